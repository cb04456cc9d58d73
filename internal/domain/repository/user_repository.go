// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mediatrack/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserQuery narrows ListUsers results. Zero values mean "no constraint".
type UserQuery struct {
	// Search matches login or name, case-insensitively, as a substring.
	Search string
	// ExcludeID removes one user (typically the caller) from the result.
	ExcludeID int64
	Limit     int
	Offset    int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByLoginOrEmail retrieves a single user whose login OR email equals
	// the given identifier. Login forms accept either in one field.
	FindByLoginOrEmail(ctx context.Context, identifier string) (*entity.User, error)

	// ExistsByLoginOrEmail reports whether any user already holds the given
	// login or the given email.
	ExistsByLoginOrEmail(ctx context.Context, login, email string) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// ListUsers retrieves users matching the query, newest first.
	ListUsers(ctx context.Context, query UserQuery) ([]*entity.User, error)
}
