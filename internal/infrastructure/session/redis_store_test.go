package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/warbler-backend/internal/infrastructure/logging"
)

func newTestStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, ttl, logging.NewNopLogger()).(*RedisStore)
	return mr, store
}

func TestRedisStore_Lifecycle(t *testing.T) {
	mr, store := newTestStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, mr.Exists(keyPrefix+created.ID))

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)

	require.NoError(t, store.Destroy(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Destroy de novo não falha
	assert.NoError(t, store.Destroy(ctx, created.ID))
}

func TestRedisStore_Expiration(t *testing.T) {
	mr, store := newTestStore(t, time.Minute)
	ctx := context.Background()

	created, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_UnknownSession(t *testing.T) {
	_, store := newTestStore(t, time.Minute)

	_, err := store.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
