package home

import "errors"

// All conditions below are local and recoverable. The dispatcher turns
// them into user-visible text; none should take the process down.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidOperation   = errors.New("invalid operation for device type")
	ErrOutOfRange         = errors.New("value out of range")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownDevice      = errors.New("unknown device")
)
