package core

import "errors"

// Sentinel errors for cookie processing.
var (
	// ErrProcessing is matched by every ProcessingError.
	ErrProcessing = errors.New("cookie processing failed")

	// ErrValuesNotFound is returned when no values are stored in the context.
	ErrValuesNotFound = errors.New("cookie values not found in context")

	// ErrCookiesNotFound is returned when no outgoing cookies are stored in the context.
	ErrCookiesNotFound = errors.New("cookies not found in context")
)

// ProcessingError wraps processing failures with a machine-readable code.
type ProcessingError struct {
	// Code is a machine-readable error code (e.g., "encrypt_failed")
	Code string

	// Message is a human-readable error message
	Message string

	// Details contains the underlying error
	Details error
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	if e.Details != nil {
		return e.Message + ": " + e.Details.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ProcessingError) Unwrap() error {
	return e.Details
}

// Is allows the error to be compared with ErrProcessing.
func (e *ProcessingError) Is(target error) bool {
	return target == ErrProcessing
}

// Common error codes
const (
	ErrorCodeEncryptFailed = "encrypt_failed"
	ErrorCodeConfigInvalid = "config_invalid"
)

// NewProcessingError creates a new ProcessingError with the given code and message.
func NewProcessingError(code, message string, details error) *ProcessingError {
	return &ProcessingError{
		Code:    code,
		Message: message,
		Details: details,
	}
}
