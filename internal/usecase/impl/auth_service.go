// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mediatrack/internal/delivery/context"
	"mediatrack/internal/domain/entity"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/domain/repository"
	"mediatrack/internal/domain/service"
	"mediatrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	sessions     repository.SessionRegistry
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Sessions     repository.SessionRegistry
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		sessions:     params.Sessions,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account after validating the password and
// checking the login and email for uniqueness.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("login", input.Login))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("login", input.Login), slog.Any("error", err))

		return nil, err
	}

	taken, err := srv.userRepo.ExistsByLoginOrEmail(ctx, input.Login, input.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to check login and email uniqueness", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check login and email uniqueness")
	}
	if taken {
		// The message stays generic so callers cannot probe which field is taken.
		return nil, domainerrors.ErrAlreadyExists
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		IsActive:     true,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("login", input.Login), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))

	return user, nil
}

// Login verifies the credentials and issues a fresh token pair. The username
// may be either the login or the email. Any previous session for the user is
// superseded.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.TokenPair, error) {
	user, err := srv.userRepo.FindByLoginOrEmail(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown user")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := srv.issueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return pair, nil
}

// Refresh rotates a refresh token: the presented token must parse as a
// refresh token and match the session registry entry byte for byte, then a
// brand new pair replaces it. Every failure collapses into a generic
// unauthorized error.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh with invalid token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	stored, err := srv.sessions.Get(ctx, claims.UserID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		srv.log(ctx).Warn("Refresh with no live session", slog.Int64("userID", claims.UserID))

		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		srv.log(ctx).Error("Failed to read session registry", slog.Int64("userID", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to read session registry")
	}

	if stored != refreshToken {
		// A valid but superseded token. The session stays live for whoever
		// holds the current token.
		srv.log(ctx).Warn("Refresh with superseded token", slog.Int64("userID", claims.UserID))

		return nil, domainerrors.ErrUnauthorized
	}

	pair, err := srv.issueTokenPair(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Int64("userID", claims.UserID))

	return pair, nil
}

// Logout removes the user's session registry entry so the refresh token can
// no longer be redeemed. Logging out twice is not an error.
func (srv *authService) Logout(ctx context.Context, userID int64) error {
	if err := srv.sessions.Delete(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete session", slog.Int64("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("User logged out", slog.Int64("userID", userID))

	return nil
}

// Authenticate resolves an access token to the active user behind it.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ParseAccessToken(accessToken)
	if err != nil {
		srv.log(ctx).Warn("Request with invalid access token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Access token for missing user", slog.Int64("userID", claims.UserID))

		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user during authentication", slog.Int64("userID", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user during authentication")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Access token for deactivated user", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

// issueTokenPair generates a pair and registers the refresh token as the
// user's single live session.
func (srv *authService) issueTokenPair(ctx context.Context, userID int64) (*entity.TokenPair, error) {
	access, refresh, err := srv.tokenService.GenerateTokenPair(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token pair", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	ttl := srv.tokenService.RefreshTokenDuration()
	if err := srv.sessions.Put(ctx, userID, refresh, ttl); err != nil {
		srv.log(ctx).Error("Failed to store session", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session")
	}

	return &entity.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    entity.TokenTypeBearer,
	}, nil
}
