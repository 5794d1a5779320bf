package catalog

import "errors"

var (
	ErrNotFound  = errors.New("catalog item not found")
	ErrForbidden = errors.New("forbidden")
)
