package apierrors

import "fmt"

// ValidationError represents an input validation failure.
// It separates validation errors (HTTP 400) from server errors (HTTP 500).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError formats its arguments using format and returns a *ValidationError whose Message field is set to the formatted string.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundError represents a "resource not found" failure.
// It maps to HTTP 404 Not Found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a NotFoundError whose Message is the result of formatting the given format string with the provided args.
func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{
		Message: fmt.Sprintf(format, args...),
	}
}
