// Package cache holds the read-through store used for food detail lookups.
package cache

import (
	"context"
	"fmt"

	"gourmet-graph/backend/pkg/config"
)

// Store caches encoded values by key. Lookups never fail: a backend error reads as a miss.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context, key string) error
	// Backend names the implementation for metrics and health reporting
	Backend() string
}

// New builds the store selected by configuration
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendMemory:
		return NewMemoryStore(cfg.CacheTTL), nil
	case config.CacheBackendRedis:
		return NewRedisStore(ctx, RedisOptions{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
			TTL:  cfg.CacheTTL,
		})
	case config.CacheBackendNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.CacheBackend)
	}
}
