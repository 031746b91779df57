package engine

import "errors"

var (
	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrExists indicates a file would have been overwritten.
	ErrExists = errors.New("file already exists")
)
