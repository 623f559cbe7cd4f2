package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestTokenVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	verifier := NewTokenVerifier(testSecret)

	t.Run("valid token yields the identity", func(t *testing.T) {
		token := signToken(t, testSecret, identityClaims{
			Email: "user@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := verifier.Verify(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("unexpected email: %s", claims.Email)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", identityClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		if _, err := verifier.Verify(ctx, token); err == nil {
			t.Error("expected a signature error")
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, identityClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		if _, err := verifier.Verify(ctx, token); err == nil {
			t.Error("expected an expiry error")
		}
	})

	t.Run("non-uuid subject is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, identityClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "not-a-uuid",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		if _, err := verifier.Verify(ctx, token); err == nil {
			t.Error("expected an invalid subject error")
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := verifier.Verify(ctx, "not.a.token"); err == nil {
			t.Error("expected a parse error")
		}
	})
}
