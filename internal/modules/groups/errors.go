package groups

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("group not found")
	ErrItemNotFound       = errors.New("invoice item not found")
	ErrDuplicateReference = errors.New("duplicate group reference")
)
