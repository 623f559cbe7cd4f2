// Package error defines domain-specific errors for the My Wallet backend.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidBudgetMonth is returned when the month is outside 1-12.
	ErrInvalidBudgetMonth = errors.New("month must be between 1 and 12")

	// ErrNegativeBudgetAmount is returned when the budget cap is negative.
	ErrNegativeBudgetAmount = errors.New("budget amount must not be negative")

	// ErrMissingBudgetCategory is returned when the category label is empty.
	ErrMissingBudgetCategory = errors.New("budget category is required")

	// ErrBudgetNotFound is returned when a budget does not exist or does not
	// belong to the requesting user.
	ErrBudgetNotFound = errors.New("budget not found")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetMonth    BudgetErrorCode = "BGT-010001"
	ErrCodeNegativeBudgetAmount  BudgetErrorCode = "BGT-010002"
	ErrCodeMissingBudgetCategory BudgetErrorCode = "BGT-010003"

	// Not found errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BGT-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
