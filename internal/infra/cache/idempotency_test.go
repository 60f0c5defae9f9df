package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"washapp/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewIdempotencyStore_NoRedisIsNoop(t *testing.T) {
	store := NewIdempotencyStore(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	for range 2 {
		claimed, id, err := store.Reserve(ctx, "user", "key")
		require.NoError(t, err)
		assert.True(t, claimed)
		assert.Equal(t, uuid.Nil, id)
	}
	require.NoError(t, store.Complete(ctx, "user", "key", uuid.New()))
	require.NoError(t, store.Release(ctx, "user", "key"))
}

func TestBookingKey(t *testing.T) {
	assert.Equal(t, "idem:booking:create:u1:k1", bookingKey("u1", "k1"))
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("WASHAPP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("WASHAPP_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

// Runs against a real server when WASHAPP_TEST_REDIS_ADDR is set.
func TestRedisStore_ReserveLifecycle(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	store := NewRedisIdempotencyStore(client, time.Minute)
	scope, key := uuid.NewString(), uuid.NewString()

	claimed, _, err := store.Reserve(ctx, scope, key)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, id, err := store.Reserve(ctx, scope, key)
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, uuid.Nil, id, "pending reservation")

	bookingID := uuid.New()
	require.NoError(t, store.Complete(ctx, scope, key, bookingID))

	claimed, id, err = store.Reserve(ctx, scope, key)
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, bookingID, id)
}

func TestRedisStore_ReleaseFreesKey(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	store := NewRedisIdempotencyStore(client, time.Minute)
	scope, key := uuid.NewString(), uuid.NewString()

	claimed, _, err := store.Reserve(ctx, scope, key)
	require.NoError(t, err)
	require.True(t, claimed)

	require.NoError(t, store.Release(ctx, scope, key))

	claimed, _, err = store.Reserve(ctx, scope, key)
	require.NoError(t, err)
	assert.True(t, claimed)
}
