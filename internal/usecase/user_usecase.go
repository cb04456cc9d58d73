// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mediatrack/internal/domain/entity"
)

// ListUsersInput narrows the user directory listing.
type ListUsersInput struct {
	// Search filters by login or name substring, case-insensitively.
	Search string
	Limit  int
	Offset int
	// RequesterID is excluded from the listing.
	RequesterID int64
}

// UpdateProfileInput carries the mutable profile fields. Nil means "leave as
// is"; an empty string clears the field.
type UpdateProfileInput struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url,max=255"`
}

// UserUsecase exposes the user directory and profile updates for
// authenticated callers.
type UserUsecase interface {
	// GetUser returns a user by id, or a not-found error.
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// ListUsers returns a page of users, excluding the requester.
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)

	// UpdateProfile applies the non-nil fields to the caller's own profile.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)
}
