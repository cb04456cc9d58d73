// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when no refresh token is stored for a user,
// either because they never logged in, logged out, or the entry expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRegistry tracks the single live refresh token per user in a fast
// key-value store with native TTL eviction. A refresh token is usable only
// while it is byte-identical to the stored value; overwriting or deleting the
// entry is the revocation mechanism for otherwise self-contained tokens.
type SessionRegistry interface {
	// Put unconditionally overwrites the stored refresh token for the user.
	// Any previously stored token becomes unusable immediately.
	Put(ctx context.Context, userID int64, refreshToken string, ttl time.Duration) error

	// Get returns the currently stored refresh token, or ErrSessionNotFound.
	Get(ctx context.Context, userID int64) (string, error)

	// Delete removes the stored token. Deleting an absent entry is not an error.
	Delete(ctx context.Context, userID int64) error
}
