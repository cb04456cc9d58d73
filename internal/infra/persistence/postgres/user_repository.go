// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mediatrack/internal/domain/entity"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/domain/repository"
	"mediatrack/internal/infra/persistence/model"
)

const defaultListLimit = 20

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByLoginOrEmail retrieves a single user whose login or email equals the
// given identifier. The login form accepts either in its username field.
func (repo *userRepository) FindByLoginOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("login = ? OR email = ?", identifier, identifier).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login or email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByLoginOrEmail reports whether the login or the email is already taken.
func (repo *userRepository) ExistsByLoginOrEmail(ctx context.Context, login, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("login = ? OR email = ?", login, email).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// The unique constraints on login and email backstop the
		// check-then-create race. The mapped error never names the
		// colliding column.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyExists.WrapMessage("login or email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Select forces the named columns through even when zero-valued, so
	// clearing a field actually persists.
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("login", "email", "password_hash", "name", "avatar_url", "is_active").
		Updates(userM)

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyExists.WrapMessage("login or email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListUsers retrieves users matching the query, newest first.
func (repo *userRepository) ListUsers(ctx context.Context, query repository.UserQuery) ([]*entity.User, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	tx := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Limit(limit).
		Offset(query.Offset).
		Order("created_at DESC")

	if query.ExcludeID != 0 {
		tx = tx.Where("id <> ?", query.ExcludeID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("login ILIKE ? OR name ILIKE ?", pattern, pattern)
	}

	var userModels []*model.UserModel
	if err := tx.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// toUserDomain maps the persistence model to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID,
		Login:        userM.Login,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		Name:         userM.Name,
		AvatarURL:    userM.AvatarURL,
		IsActive:     userM.IsActive,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}

// fromUserDomain maps a domain entity to the persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Login:        user.Login,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		AvatarURL:    user.AvatarURL,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
