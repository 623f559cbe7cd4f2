// Package error defines domain-specific errors for the My Wallet backend.
package error

import "errors"

// Assistant domain errors.
var (
	// ErrEmptyMessage is returned when the user message is blank.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrMessageTooLong is returned when the user message exceeds the limit.
	ErrMessageTooLong = errors.New("message is too long")

	// ErrAssistantUnavailable is returned when the assistant service is not configured.
	ErrAssistantUnavailable = errors.New("assistant service is not available")
)

// AssistantErrorCode defines error codes for assistant errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssistantErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyMessage   AssistantErrorCode = "AST-010001"
	ErrCodeMessageTooLong AssistantErrorCode = "AST-010002"

	// Service errors (03XXXX)
	ErrCodeAssistantUnavailable AssistantErrorCode = "AST-030001"

	// Internal errors (99XXXX)
	ErrCodeAssistantInternalError AssistantErrorCode = "AST-990001"
)

// AssistantError represents an assistant error with code and message.
type AssistantError struct {
	Code    AssistantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AssistantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// NewAssistantError creates a new AssistantError with the given code and message.
func NewAssistantError(code AssistantErrorCode, message string, err error) *AssistantError {
	return &AssistantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
