package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`

	// Err is the error kind this error belongs to, if any.
	Err error `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the error kind so callers can use errors.Is.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Error kinds
var (
	// ErrInvalidOrder is the kind of every order rejected at validation:
	// empty customer name, empty order, non-positive quantity, unknown item.
	ErrInvalidOrder = errors.New("invalid order")
)

// Common errors
var (
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid admin password"}
)

// NewInvalidOrderError creates an InvalidOrder error with a custom message
func NewInvalidOrderError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Err:     ErrInvalidOrder,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
		Err:     ErrInvalidOrder,
	}
}

// IsInvalidOrder reports whether err is an InvalidOrder rejection
func IsInvalidOrder(err error) bool {
	return errors.Is(err, ErrInvalidOrder)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
