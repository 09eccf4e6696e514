package error

import "errors"

// Auth domain errors. Token issuance lives in the identity collaborator; this
// application only validates tokens it receives.
var (
	// ErrInvalidToken is returned when a token fails signature or claims validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRevokedToken is returned when a token has been revoked.
	ErrRevokedToken = errors.New("token has been revoked")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRevokedToken AuthErrorCode = "AUTH-010003"
)
