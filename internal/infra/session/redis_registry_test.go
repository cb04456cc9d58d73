package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediatrack/internal/domain/repository"
)

// newTestRegistry creates a registry backed by miniredis.
func newTestRegistry(t *testing.T) (repository.SessionRegistry, *miniredis.Miniredis) {
	t.Helper()

	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSessionRegistry(client), mini
}

func TestRedisSessionRegistry_PutAndGet(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Put(ctx, 1, "token-a", time.Hour))

	got, err := registry.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "token-a", got)
}

func TestRedisSessionRegistry_GetMissing(t *testing.T) {
	registry, _ := newTestRegistry(t)

	_, err := registry.Get(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisSessionRegistry_PutOverwrites(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Put(ctx, 1, "token-a", time.Hour))
	require.NoError(t, registry.Put(ctx, 1, "token-b", time.Hour))

	got, err := registry.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "token-b", got)
}

func TestRedisSessionRegistry_DeleteIsIdempotent(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Put(ctx, 1, "token-a", time.Hour))
	require.NoError(t, registry.Delete(ctx, 1))

	_, err := registry.Get(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	// Deleting an absent entry is not an error.
	require.NoError(t, registry.Delete(ctx, 1))
}

func TestRedisSessionRegistry_TTLExpiry(t *testing.T) {
	registry, mini := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Put(ctx, 1, "token-a", time.Minute))

	// The store's own clock evicts the entry; the core never sweeps.
	mini.FastForward(2 * time.Minute)

	_, err := registry.Get(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisSessionRegistry_KeysAreScopedPerUser(t *testing.T) {
	registry, mini := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Put(ctx, 1, "token-a", time.Hour))
	require.NoError(t, registry.Put(ctx, 2, "token-b", time.Hour))

	assert.True(t, mini.Exists("refresh_token:1"))
	assert.True(t, mini.Exists("refresh_token:2"))

	require.NoError(t, registry.Delete(ctx, 1))
	got, err := registry.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "token-b", got)
}
