package service

import (
	"errors"
	"time"
)

var (
	// ErrInvalidToken covers bad signatures, unexpected algorithms, malformed
	// tokens and expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingSubject is returned for a verified token without a sub claim.
	ErrMissingSubject = errors.New("token has no subject")
)

// Claims are the verified contents of an access token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// IssueToken signs a token for subject valid for ttl; ttl <= 0 uses DefaultTTL.
	IssueToken(subject string, ttl time.Duration) (string, error)

	// ValidateToken verifies tokenString and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// DefaultTTL returns the configured token lifetime.
	DefaultTTL() time.Duration
}
