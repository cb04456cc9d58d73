package session

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"mediatrack/internal/domain/repository"
)

// sessionKeyPrefix namespaces registry entries in the shared Redis database.
const sessionKeyPrefix = "refresh_token:"

// redisSessionRegistry implements repository.SessionRegistry with one string
// key per user. All operations are single-key; Redis's own TTL handles silent
// expiry, so there is no sweep logic anywhere in the core.
type redisSessionRegistry struct {
	client *redis.Client
}

// NewRedisSessionRegistry is the constructor for redisSessionRegistry.
func NewRedisSessionRegistry(client *redis.Client) repository.SessionRegistry {
	return &redisSessionRegistry{client: client}
}

// Put unconditionally overwrites the stored refresh token. Last writer wins;
// rotation revokes by whole-value overwrite, not compare-and-set.
func (r *redisSessionRegistry) Put(ctx context.Context, userID int64, refreshToken string, ttl time.Duration) error {
	if err := r.client.Set(ctx, sessionKey(userID), refreshToken, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// Get returns the stored refresh token, or ErrSessionNotFound when the key is
// absent or already expired.
func (r *redisSessionRegistry) Get(ctx context.Context, userID int64) (string, error) {
	value, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrSessionNotFound
		}

		return "", errors.Wrap(err, "failed to load refresh token")
	}

	return value, nil
}

// Delete removes the stored token. Deleting an absent key is a no-op.
func (r *redisSessionRegistry) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

func sessionKey(userID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(userID, 10)
}
