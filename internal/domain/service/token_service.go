package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the decoded content of a bearer token.
// Subject is the email of the authenticated account.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: subject plus expiry, no server-side revocation list.
type TokenService interface {
	// IssueToken creates a signed, time-limited token for the given subject.
	IssueToken(subject string) (string, error)

	// ValidateToken checks signature and expiry and returns the decoded claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token time-to-live.
	TokenDuration() time.Duration
}
