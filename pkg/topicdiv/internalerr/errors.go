package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnsupportedModelKind = errors.New("unsupported model kind")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidConfig        = errors.New("invalid configuration")
)
