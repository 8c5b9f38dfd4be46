package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, "test"), server
}

func TestRedis_SetGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestRedis(t)

	require.NoError(t, cache.Set(ctx, "salary:rn", "comfortable", time.Minute))

	value, found, err := cache.Get(ctx, "salary:rn")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "comfortable", value)
}

func TestRedis_MissOnAbsentKey(t *testing.T) {
	cache, _ := newTestRedis(t)

	_, found, err := cache.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedis_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestRedis(t)

	require.NoError(t, cache.Set(ctx, "k", "v", time.Second))
	server.FastForward(2 * time.Second)

	_, found, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedis_ClearOnlyOwnPrefix(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestRedis(t)

	require.NoError(t, cache.Set(ctx, "a", "1", 0))
	require.NoError(t, server.Set("other:key", "keep"))

	require.NoError(t, cache.Clear(ctx))

	_, found, _ := cache.Get(ctx, "a")
	assert.False(t, found)
	assert.True(t, server.Exists("other:key"), "Clear must not touch foreign keys")
}

func TestRedis_Ping(t *testing.T) {
	cache, _ := newTestRedis(t)
	assert.NoError(t, cache.Ping(context.Background()))
}
