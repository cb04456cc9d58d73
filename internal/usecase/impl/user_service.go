package impl

import (
	"context"
	"log/slog"

	deliverycontext "mediatrack/internal/delivery/context"
	"mediatrack/internal/domain/entity"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/domain/repository"
	"mediatrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser returns a single user by id.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user", slog.Int64("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// UpdateProfile applies the non-nil input fields to the user's profile.
func (srv *userService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Int64("userID", userID))

	return user, nil
}

// ListUsers returns a page of the user directory, excluding the requester.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	users, err := srv.userRepo.ListUsers(ctx, repository.UserQuery{
		Search:    input.Search,
		ExcludeID: input.RequesterID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
