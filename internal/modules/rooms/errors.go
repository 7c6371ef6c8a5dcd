package rooms

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("room not found")
	ErrDuplicateName = errors.New("room name already used")
)
