// Package apperr defines the error taxonomy shared by services and handlers.
//
// Services wrap one of the sentinel errors with %w and context; handlers map
// the sentinel to an HTTP status. Anything not wrapping a sentinel is treated
// as a persistence/internal failure.
package apperr

import "errors"

var (
	// ErrValidation marks bad input shape or length.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a missing referenced report or profile.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an attempt to re-finalize a terminal report.
	ErrConflict = errors.New("conflict")

	// ErrForbidden marks a caller lacking the required role or credential.
	ErrForbidden = errors.New("forbidden")

	// ErrPersistence marks a store read/write failure.
	ErrPersistence = errors.New("persistence error")
)

// IsValidation reports whether err wraps ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err wraps ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsForbidden reports whether err wraps ErrForbidden.
func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }
