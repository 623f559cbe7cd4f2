// Package error defines domain-specific errors for the My Wallet backend.
package error

import "errors"

// Authentication boundary errors. The backend never issues tokens; it only
// verifies bearer tokens minted by the external identity provider.
var (
	// ErrMissingToken is returned when no bearer token is present.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when the bearer token fails verification.
	ErrInvalidToken = errors.New("authorization token is invalid or expired")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUT-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUT-040001"
)
