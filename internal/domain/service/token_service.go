package service

import (
	"errors"
	"time"
)

// Token type discriminators embedded in the "type" claim. A refresh token can
// never pass an access-token check and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrInvalidToken is the single sentinel all token verification failures wrap:
// bad signature, expired, malformed, wrong type. The caller treats them
// uniformly; the wrapped cause stays available for logging.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified content of a token.
type Claims struct {
	UserID   int64     // Parsed from the "sub" claim.
	Type     string    // "access" or "refresh".
	TokenID  string    // The "jti" claim; set on refresh tokens only.
	IssuedAt time.Time
	ExpireAt time.Time
}

// TokenService signs and verifies the self-contained bearer tokens.
// This abstracts the token format (JWT) from the use cases.
type TokenService interface {
	// GenerateTokenPair creates a new access/refresh token pair for a user.
	// The refresh token carries a fresh unique id.
	GenerateTokenPair(userID int64) (accessToken string, refreshToken string, err error)

	// ParseAccessToken verifies signature, expiry and the "access" type tag.
	ParseAccessToken(tokenString string) (*Claims, error)

	// ParseRefreshToken verifies signature, expiry and the "refresh" type tag.
	ParseRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime,
	// which is also the session registry TTL.
	RefreshTokenDuration() time.Duration
}
