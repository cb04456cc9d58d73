// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"mediatrack/config"
	domainerrors "mediatrack/internal/domain/errors"
	"mediatrack/internal/domain/service"
)

const (
	// minPasswordLength is the minimum accepted password length at registration.
	minPasswordLength = 8

	// maxPasswordBytes is the number of password bytes actually fed to
	// bcrypt, which caps input at 72 bytes. Bytes past the cutoff do not
	// participate in the hash.
	maxPasswordBytes = 71
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The cost factor comes from configuration but never drops below bcrypt's default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > cost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(truncatePassword(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
// A malformed hash yields false, never an error.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password))

	return err == nil
}

// ValidatePasswordStrength enforces the registration-time password policy:
// at least 8 characters, at least one letter and at least one digit.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return domainerrors.ErrWeakPassword.WithDetails("password must be at least 8 characters long")
	}

	hasLetter := strings.ContainsFunc(password, unicode.IsLetter)
	hasDigit := strings.ContainsFunc(password, unicode.IsDigit)

	if !hasLetter {
		return domainerrors.ErrWeakPassword.WithDetails("password must contain at least one letter")
	}
	if !hasDigit {
		return domainerrors.ErrWeakPassword.WithDetails("password must contain at least one digit")
	}

	return nil
}

// truncatePassword caps the encoded bytes fed to bcrypt at maxPasswordBytes.
func truncatePassword(password string) []byte {
	raw := []byte(password)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}

	return raw
}
