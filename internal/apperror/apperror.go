// Package apperror defines the error taxonomy shared by the store and
// handler layers: validation failures, missing records, authentication
// failures, forbidden actions, and storage faults. Handlers map each kind
// to an HTTP status without ever serializing the underlying error.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrForbidden      = errors.New("forbidden")
	ErrStorage        = errors.New("storage failure")
)

// AppError carries a user-facing message alongside the sentinel that
// classifies it. The wrapped error (if any) is for logs only.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that no record of the given resource matched the id.
// The message mirrors the API's fixed wording, e.g. "No user found with this id".
func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("No %s found with this id", resource),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func AuthenticationFailed(message string) *AppError {
	return &AppError{
		Err:     ErrAuthentication,
		Message: message,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

// Storage wraps a database error. The operation name goes into logs; the
// caller-visible message stays generic so internals never leak.
func Storage(op string, err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %s: %v", ErrStorage, op, err),
		Message: "Internal server error",
	}
}
