package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmet-graph/backend/pkg/config"
)

func TestNew_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	store, err := New(ctx, &config.Config{CacheBackend: config.CacheBackendMemory, CacheTTL: time.Minute})
	require.NoError(t, err)
	assert.Equal(t, "memory", store.Backend())

	store, err = New(ctx, &config.Config{CacheBackend: config.CacheBackendNone})
	require.NoError(t, err)
	assert.Equal(t, "none", store.Backend())

	_, err = New(ctx, &config.Config{CacheBackend: "memcached"})
	assert.Error(t, err)
}

func TestNewRedisStore_MissingAddr(t *testing.T) {
	_, err := NewRedisStore(context.Background(), RedisOptions{})
	assert.Error(t, err)
}

// Requires a running Redis; set REDIS_ADDR to enable
func TestRedisStore_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	store, err := NewRedisStore(ctx, RedisOptions{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	defer store.Close()

	key := "test:" + time.Now().Format("20060102150405.000")
	defer store.Invalidate(ctx, key)

	_, ok := store.Get(ctx, key)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, []byte("bún bò")))
	data, ok := store.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, "bún bò", string(data))

	require.NoError(t, store.Invalidate(ctx, key))
	_, ok = store.Get(ctx, key)
	assert.False(t, ok)
}
