package rental

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room is not vacant")
)
