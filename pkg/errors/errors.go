// Package errors provides common domain error types for the Lumio application.
//
// This package defines sentinel errors for common domain conditions like "validation
// error" or "not found" that can be used across all packages. Using typed errors
// enables consistent error handling patterns with errors.Is() checks.
//
// Usage:
//
//	import lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
//
//	// Return a domain error
//	return fmt.Errorf("%w: transcript is empty", lerrors.ErrValidation)
//
//	// Check for domain errors
//	if lerrors.IsValidation(err) {
//	    // respond with 400
//	}
package errors

import "errors"

// Domain errors - common sentinel errors for domain conditions.
var (
	// ErrValidation indicates invalid input or validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates the operation is not valid for the current state.
	ErrInvalidState = errors.New("invalid state")

	// ErrTransport indicates a downstream transport failure (e.g., SMTP send).
	ErrTransport = errors.New("transport error")

	// ErrUnsupportedFormat indicates a file format the service cannot extract text from.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// IsValidation reports whether any error in err's chain is ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether any error in err's chain is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidState reports whether any error in err's chain is ErrInvalidState.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsTransport reports whether any error in err's chain is ErrTransport.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsUnsupportedFormat reports whether any error in err's chain is ErrUnsupportedFormat.
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}
