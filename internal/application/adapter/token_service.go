package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	ExpiresAt time.Time
}

// TokenService validates access tokens issued by the identity collaborator.
// This application never issues tokens itself.
type TokenService interface {
	// ValidateAccessToken verifies the token signature, expiry and revocation
	// status, and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
