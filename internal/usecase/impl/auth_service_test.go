package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mediatrack/internal/domain/entity"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/domain/repository"
	"mediatrack/internal/domain/service"
	mockRepo "mediatrack/internal/mocks/repository"
	mockSvc "mediatrack/internal/mocks/service"
	"mediatrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type authServiceFixture struct {
	userRepo     *mockRepo.MockUserRepository
	sessions     *mockRepo.MockSessionRegistry
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	service      usecase.AuthUsecase
}

func newAuthServiceFixture(t *testing.T) *authServiceFixture {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessions := mockRepo.NewMockSessionRegistry(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Sessions:     sessions,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return &authServiceFixture{
		userRepo:     userRepo,
		sessions:     sessions,
		hasher:       hasher,
		tokenService: tokenService,
		service:      svc,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Login:    "alice",
		Password: "secret123",
		Name:     "Alice",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().ExistsByLoginOrEmail(ctx, input.Login, input.Email).Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Login:    "alice",
		Password: "short",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrWeakPassword.WithDetails("password must be at least 8 characters long"))

	user, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestAuthService_Register_TakenLoginGetsGenericConflict(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "bob@example.com",
		Login:    "bob",
		Password: "secret123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().ExistsByLoginOrEmail(ctx, input.Login, input.Email).Return(true, nil)

	user, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Login: "alice", PasswordHash: "hashed", IsActive: true}

	fx.userRepo.EXPECT().FindByLoginOrEmail(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokenPair(int64(7)).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.sessions.EXPECT().Put(ctx, int64(7), "refresh-token", 7*24*time.Hour).Return(nil)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
	assert.Equal(t, entity.TokenTypeBearer, pair.TokenType)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByLoginOrEmail(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever1"})

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Login: "alice", PasswordHash: "hashed", IsActive: true}

	fx.userRepo.EXPECT().FindByLoginOrEmail(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", "hashed").Return(false)

	pair, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong-password"})

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseRefreshToken("old-refresh").
		Return(&service.Claims{UserID: 7, Type: service.TokenTypeRefresh}, nil)
	fx.sessions.EXPECT().Get(ctx, int64(7)).Return("old-refresh", nil)
	fx.tokenService.EXPECT().GenerateTokenPair(int64(7)).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.sessions.EXPECT().Put(ctx, int64(7), "new-refresh", 7*24*time.Hour).Return(nil)

	pair, err := fx.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestAuthService_Refresh_SupersededToken(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseRefreshToken("old-refresh").
		Return(&service.Claims{UserID: 7, Type: service.TokenTypeRefresh}, nil)
	fx.sessions.EXPECT().Get(ctx, int64(7)).Return("current-refresh", nil)

	pair, err := fx.service.Refresh(ctx, "old-refresh")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Refresh_NoLiveSession(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseRefreshToken("old-refresh").
		Return(&service.Claims{UserID: 7, Type: service.TokenTypeRefresh}, nil)
	fx.sessions.EXPECT().Get(ctx, int64(7)).Return("", repository.ErrSessionNotFound)

	pair, err := fx.service.Refresh(ctx, "old-refresh")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseRefreshToken("garbage").
		Return(nil, errors.Wrap(service.ErrInvalidToken, "failed to parse token"))

	pair, err := fx.service.Refresh(ctx, "garbage")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Refresh_EmptyToken(t *testing.T) {
	fx := newAuthServiceFixture(t)

	pair, err := fx.service.Refresh(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Logout(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Delete(ctx, int64(7)).Return(nil)

	require.NoError(t, fx.service.Logout(ctx, 7))
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Login: "alice", IsActive: true}

	fx.tokenService.EXPECT().
		ParseAccessToken("access-token").
		Return(&service.Claims{UserID: 7, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(user, nil)

	got, err := fx.service.Authenticate(ctx, "access-token")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseAccessToken("garbage").
		Return(nil, errors.Wrap(service.ErrInvalidToken, "failed to parse token"))

	got, err := fx.service.Authenticate(ctx, "garbage")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Authenticate_MissingUser(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseAccessToken("access-token").
		Return(&service.Claims{UserID: 7, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.Authenticate(ctx, "access-token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Authenticate_DeactivatedUser(t *testing.T) {
	fx := newAuthServiceFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Login: "alice", IsActive: false}

	fx.tokenService.EXPECT().
		ParseAccessToken("access-token").
		Return(&service.Claims{UserID: 7, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(user, nil)

	got, err := fx.service.Authenticate(ctx, "access-token")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
