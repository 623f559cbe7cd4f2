// Package error defines domain-specific errors for the My Wallet backend.
package error

import "errors"

// Saving goal domain errors.
var (
	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("goal name is required")

	// ErrNegativeTargetAmount is returned when the target amount is negative.
	ErrNegativeTargetAmount = errors.New("target amount must not be negative")

	// ErrInvalidContribution is returned when a contribution is zero or negative.
	ErrInvalidContribution = errors.New("contribution amount must be positive")

	// ErrGoalNotFound is returned when a goal does not exist or does not belong
	// to the requesting user.
	ErrGoalNotFound = errors.New("saving goal not found")
)

// GoalErrorCode defines error codes for saving goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingGoalName      GoalErrorCode = "GOL-010001"
	ErrCodeNegativeTargetAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidContribution  GoalErrorCode = "GOL-010003"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError GoalErrorCode = "GOL-990001"
)

// GoalError represents a saving goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
