// Package error defines domain-specific errors for the My Wallet backend.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionType is returned when the type is not expense or income.
	ErrInvalidTransactionType = errors.New("transaction type must be 'expense' or 'income'")

	// ErrUnknownTransactionType is returned by aggregation when a stored record
	// carries a type value outside the known set. The aggregators fail loudly
	// instead of defaulting the record to either bucket.
	ErrUnknownTransactionType = errors.New("transaction has an unknown type")

	// ErrNegativeAmount is returned when a transaction amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrMissingCategory is returned when the category label is empty.
	ErrMissingCategory = errors.New("category is required")

	// ErrTransactionNotFound is returned when a transaction does not exist or
	// does not belong to the requesting user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidPagination is returned when page or page size is out of range.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeNegativeAmount         TransactionErrorCode = "TXN-010002"
	ErrCodeMissingCategory        TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidPagination      TransactionErrorCode = "TXN-010004"

	// Not found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Data errors (03XXXX)
	ErrCodeUnknownTransactionType TransactionErrorCode = "TXN-030001"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
