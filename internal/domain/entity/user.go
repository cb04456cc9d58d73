// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the durable account record of a registered person.
// Only the bcrypt hash of the password is ever stored.
type User struct {
	ID           int64     // Numeric identifier, generated by the database.
	Login        string    // Unique handle, 3-50 chars, letters/digits/underscore.
	Email        string    // Unique contact email, also accepted as a login identifier.
	PasswordHash string    // bcrypt hash of the password. Never exposed outside the core.
	Name         string    // Optional display name. Empty when never set.
	AvatarURL    string    // Optional URL of the user's avatar image.
	IsActive     bool      // Inactive users fail authentication even with a valid token.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
