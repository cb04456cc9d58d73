package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mediatrack/config"
	domainerrors "mediatrack/internal/domain/errors"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasher(&config.Config{}).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	password := "Passw0rd"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("Passw0rd!", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := newTestHasher()

	// A broken hash is a mismatch, never a panic or error.
	assert.False(t, hasher.Check("Passw0rd", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("Passw0rd", ""))
}

func TestBcryptHasher_TruncatesAt71Bytes(t *testing.T) {
	hasher := newTestHasher()

	base := strings.Repeat("a", 70) + "1"
	hash, err := hasher.Hash(base + "tail-that-is-ignored")
	require.NoError(t, err)

	// Everything past byte 71 does not participate in the hash.
	assert.True(t, hasher.Check(base, hash))
	assert.True(t, hasher.Check(base+"different-tail", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		reason   string
	}{
		{name: "valid", password: "Passw0rd"},
		{name: "too short", password: "Pw1", reason: "at least 8 characters"},
		{name: "seven chars", password: "abcdef1", reason: "at least 8 characters"},
		{name: "no digit", password: "password", reason: "at least one digit"},
		{name: "no letter", password: "12345678", reason: "at least one letter"},
		{name: "unicode letters", password: "пароль123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.reason == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "WEAK_PASSWORD", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.reason)
		})
	}
}

func TestNewBcryptHasher_CostFloor(t *testing.T) {
	// A cost below bcrypt's default is silently raised to the default.
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 1}}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 12}}).(*bcryptHasher)
	assert.Equal(t, 12, hasher.cost)
}
