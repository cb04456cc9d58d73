// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// TokenTypeBearer is the token_type value reported to clients.
const TokenTypeBearer = "bearer"

// TokenPair is the result of a successful login or refresh: a short-lived
// access token for the Authorization header and a long-lived refresh token
// destined for the HTTP-only cookie. Both are self-contained signed tokens;
// only the refresh token is additionally tracked in the session registry.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}
