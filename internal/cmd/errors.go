package cmd

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrNotFound indicates a file or glob match was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnreadable indicates a file exists but could not be read as FITS.
	ErrUnreadable = errors.New("unreadable file")
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed indicates the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrUnreadable):
		return ExitUnreadable
	default:
		return ExitGeneralError
	}
}

// WrapNotFound wraps an error with ErrNotFound.
func WrapNotFound(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
}

// WrapUnreadable wraps an error with ErrUnreadable.
func WrapUnreadable(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrUnreadable, err)
}
