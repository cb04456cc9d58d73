// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mediatrack/config"
	"mediatrack/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Both token types are signed with one shared HS256 secret; what separates them
// is the "type" claim and their lifetime.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.Auth.Secret),
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
	}, nil
}

// GenerateTokenPair creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokenPair(userID int64) (accessToken string, refreshToken string, err error) {
	now := time.Now()

	accessToken, err = s.signToken(userID, now, s.accessTTL, service.TokenTypeAccess, "")
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	// The jti makes every refresh token unique even for back-to-back logins.
	refreshToken, err = s.signToken(userID, now, s.refreshTTL, service.TokenTypeRefresh, uuid.New().String())
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

// ParseAccessToken verifies an access token and returns its claims.
func (s *jwtService) ParseAccessToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, service.TokenTypeAccess)
}

// ParseRefreshToken verifies a refresh token and returns its claims.
func (s *jwtService) ParseRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parseToken(tokenString, service.TokenTypeRefresh)
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// signToken is a private helper to create a JWT with specific claims.
func (s *jwtService) signToken(userID int64, now time.Time, ttl time.Duration, tokenType, tokenID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"iat":  now.Unix(),                    // Issued At
		"exp":  now.Add(ttl).Unix(),           // Expiration Time
		"type": tokenType,                     // Type of token (access or refresh)
	}
	if tokenID != "" {
		claims["jti"] = tokenID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// parseToken verifies signature, expiry and the type tag in one pass. Every
// failure mode wraps service.ErrInvalidToken so the boundary can collapse them
// into a single unauthorized outcome while logs keep the specific cause.
func (s *jwtService) parseToken(tokenString, wantType string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidToken, "token verification failed: %v", err)
	}
	if !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, "token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(service.ErrInvalidToken, "unexpected claims format")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != wantType {
		return nil, errors.Wrapf(service.ErrInvalidToken, "token type %q, want %q", tokenType, wantType)
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "subject claim missing")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "subject claim is not a user id")
	}

	claims := &service.Claims{
		UserID: userID,
		Type:   tokenType,
	}
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.TokenID = jti
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpireAt = exp.Time
	}

	return claims, nil
}
