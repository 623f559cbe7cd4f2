// Package error defines domain-specific errors for the My Wallet backend.
package error

import "errors"

// Report and period calculation errors.
var (
	// ErrInvalidMonth is returned when a month number is outside the range
	// allowed by its convention (0-11 zero-based, 1-12 one-based).
	ErrInvalidMonth = errors.New("month is out of range for its convention")

	// ErrInvalidMonthConvention is returned when a convention value is unknown.
	ErrInvalidMonthConvention = errors.New("unknown month convention")

	// ErrInvalidMonthCount is returned when a report window length is not positive.
	ErrInvalidMonthCount = errors.New("month count must be at least 1")

	// ErrUnsupportedReportPeriod is returned when the requested report window is
	// not one of the supported lengths (1, 3 or 6 months).
	ErrUnsupportedReportPeriod = errors.New("report period must be 1, 3 or 6 months")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth            ReportErrorCode = "RPT-010001"
	ErrCodeInvalidMonthConvention  ReportErrorCode = "RPT-010002"
	ErrCodeInvalidMonthCount       ReportErrorCode = "RPT-010003"
	ErrCodeUnsupportedReportPeriod ReportErrorCode = "RPT-010004"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
