// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenClaims holds the identity extracted from a verified bearer token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenVerifier verifies bearer tokens minted by the external identity
// provider. This service never issues, refreshes or revokes tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}
