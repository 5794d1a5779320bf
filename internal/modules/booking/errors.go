package booking

import "errors"

var (
	ErrNotFound          = errors.New("booking not found")
	ErrItemNotFound      = errors.New("referenced catalog item not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)
