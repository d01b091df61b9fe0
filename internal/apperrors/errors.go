package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientStock indicates that an exit operation would drive a stock
// balance below zero. Raised before any write happens.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrConcurrencyConflict indicates that the optimistic version check on a
// stock balance lost the race against a concurrent writer. Services retry
// internally before surfacing this to callers.
var ErrConcurrencyConflict = errors.New("concurrent modification detected")

// ErrIntegrityViolation indicates that a storage-layer constraint fired.
// Service-layer validation should have prevented this; it is a bug signal
// and must never be retried automatically.
var ErrIntegrityViolation = errors.New("storage integrity violation")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries a status code alongside a message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
