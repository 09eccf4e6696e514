package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/leviis10/old-money/internal/domain/error"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*tokenService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewTokenService(testSecret, client).(*tokenService), mr
}

func signToken(t *testing.T, secret string, userID uuid.UUID, tokenType string, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    userID.String(),
		Username:  "tester",
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestTokenService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token returns claims", func(t *testing.T) {
		svc, _ := newTestService(t)
		userID := uuid.New()
		token := signToken(t, testSecret, userID, "access", time.Hour)

		claims, err := svc.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}
		if claims.Username != "tester" {
			t.Errorf("expected username tester, got %s", claims.Username)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		token := signToken(t, testSecret, uuid.New(), "access", -time.Minute)

		if _, err := svc.ValidateAccessToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token signed with wrong secret is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		token := signToken(t, "other-secret", uuid.New(), "access", time.Hour)

		if _, err := svc.ValidateAccessToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		token := signToken(t, testSecret, uuid.New(), "refresh", time.Hour)

		if _, err := svc.ValidateAccessToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		svc, mr := newTestService(t)
		token := signToken(t, testSecret, uuid.New(), "access", time.Hour)
		mr.Set(revokedKeyPrefix+token, "1")

		if _, err := svc.ValidateAccessToken(ctx, token); !errors.Is(err, domainerror.ErrRevokedToken) {
			t.Errorf("expected ErrRevokedToken, got %v", err)
		}
	})
}
