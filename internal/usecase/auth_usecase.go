// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mediatrack/internal/domain/entity"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Login    string `json:"login" form:"login" validate:"required,login"`
	Password string `json:"password" form:"password" validate:"required"`
	Name     string `json:"name" form:"name" validate:"omitempty,max=100"`
}

// LoginInput carries the login form fields. Username accepts either the login
// or the email.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthUsecase orchestrates registration, login, token refresh, logout and
// per-request authentication. Per user there is at most one live session:
// every login or refresh supersedes the previous refresh token.
type AuthUsecase interface {
	// Register validates the password, rejects taken logins/emails with a
	// generic conflict, and persists the new user.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a fresh token pair, overwriting
	// any session the user had.
	Login(ctx context.Context, input *LoginInput) (*entity.TokenPair, error)

	// Refresh exchanges a live refresh token for a new pair (rotation). The
	// presented token must match the session registry entry byte for byte.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// Logout deletes the user's session registry entry. Idempotent. Issued
	// access tokens stay valid until natural expiry.
	Logout(ctx context.Context, userID int64) error

	// Authenticate verifies an access token and loads the active user behind
	// it. Invoked on every protected request.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}
