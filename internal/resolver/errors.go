package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPatternMatch indicates the file matched no configured pattern in
	// either direction. Creating a file cannot fix it.
	ErrNoPatternMatch = errors.New("no matching pattern")

	// ErrFileNotFound indicates candidates were derived but none exist.
	ErrFileNotFound = errors.New("alternate file not found")

	// ErrCreationFailed indicates the alternate file could not be created.
	ErrCreationFailed = errors.New("alternate file creation failed")
)

// NotFoundError reports a failed lookup along with every attempted path.
type NotFoundError struct {
	File       string
	Candidates []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("no alternate for %s: it didn't match any known patterns", e.File)
	}
	return fmt.Sprintf("no alternate found for %s. Tried: %s", e.File, strings.Join(e.Candidates, ", "))
}

// Is matches ErrNoPatternMatch when nothing was attempted, ErrFileNotFound otherwise.
func (e *NotFoundError) Is(target error) bool {
	if len(e.Candidates) == 0 {
		return target == ErrNoPatternMatch
	}
	return target == ErrFileNotFound
}

// CreationError reports a failed attempt to create an alternate file.
type CreationError struct {
	File string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CreationError) Error() string {
	return fmt.Sprintf("couldn't create %s for %s: %v", e.Path, e.File, e.Err)
}

// Is matches ErrCreationFailed.
func (e *CreationError) Is(target error) bool {
	return target == ErrCreationFailed
}

// Unwrap returns the underlying I/O error.
func (e *CreationError) Unwrap() error {
	return e.Err
}
