package adapters

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/my-wallet/backend/internal/application/adapter"
)

// identityClaims are the claims minted by the external identity provider.
// The user ID travels in the standard subject claim.
type identityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenVerifier implements the adapter.TokenVerifier interface for HS256
// tokens signed with a shared secret. This service never mints tokens.
type tokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a new token verifier instance.
func NewTokenVerifier(secret string) adapter.TokenVerifier {
	return &tokenVerifier{
		secret: []byte(secret),
	}
}

// Verify parses and validates the token, returning the caller's identity.
func (s *tokenVerifier) Verify(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token subject: %w", err)
	}

	return &adapter.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}
