package billing

import "errors"

var (
	ErrInvalidInput = errors.New("invalid billing input")
	ErrNotFound     = errors.New("room not found")
	ErrRoomVacant   = errors.New("room has no occupant to bill")
	ErrSettleFailed = errors.New("settlement persistence failed")
)
