package impl

import (
	"context"
	"testing"

	"mediatrack/internal/domain/entity"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/domain/repository"
	mockRepo "mediatrack/internal/mocks/repository"
	"mediatrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceFixture(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo
}

func TestUserService_GetUser_Success(t *testing.T) {
	svc, userRepo := newUserServiceFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Login: "alice", Name: "Alice", IsActive: true}
	userRepo.EXPECT().FindByID(ctx, int64(7)).Return(user, nil)

	got, err := svc.GetUser(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, userRepo := newUserServiceFixture(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	got, err := svc.GetUser(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_ExcludesRequester(t *testing.T) {
	svc, userRepo := newUserServiceFixture(t)
	ctx := context.Background()

	others := []*entity.User{
		{ID: 2, Login: "bob"},
		{ID: 3, Login: "carol"},
	}
	userRepo.EXPECT().
		ListUsers(ctx, repository.UserQuery{Search: "o", ExcludeID: 1, Limit: 10, Offset: 5}).
		Return(others, nil)

	got, err := svc.ListUsers(ctx, &usecase.ListUsersInput{
		Search:      "o",
		Limit:       10,
		Offset:      5,
		RequesterID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, others, got)
}

func TestUserService_UpdateProfile_AppliesOnlyGivenFields(t *testing.T) {
	svc, userRepo := newUserServiceFixture(t)
	ctx := context.Background()

	existing := &entity.User{ID: 7, Login: "alice", Name: "Alice", AvatarURL: "https://img.example.com/old.png"}
	userRepo.EXPECT().FindByID(ctx, int64(7)).Return(existing, nil)

	newName := "Alice Liddell"
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Alice Liddell", user.Name)
			assert.Equal(t, "https://img.example.com/old.png", user.AvatarURL)
		}).
		Return(nil)

	updated, err := svc.UpdateProfile(ctx, 7, &usecase.UpdateProfileInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", updated.Name)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	svc, userRepo := newUserServiceFixture(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	name := "Nobody"
	updated, err := svc.UpdateProfile(ctx, 404, &usecase.UpdateProfileInput{Name: &name})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
