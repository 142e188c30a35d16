package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/metrics"
	"gourmet-graph/backend/pkg/logger"
)

const redisKeyPrefix = "gourmet:"

// RedisOptions configure a RedisStore
type RedisOptions struct {
	Addr string
	DB   int
	TTL  time.Duration
}

// RedisStore shares cached entries across server instances
type RedisStore struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore connects to Redis and verifies it answers a ping
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	if opts.TTL <= 0 {
		opts.TTL = constants.DefaultCacheTTL
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{
		rdb:    rdb,
		ttl:    opts.TTL,
		logger: logger.Named("cache").With(zap.String("backend", "redis")),
	}, nil
}

// Get returns the cached value; Redis errors are logged and read as a miss
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			r.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		metrics.RecordCacheLookup(r.Backend(), false)
		return nil, false
	}
	metrics.RecordCacheLookup(r.Backend(), true)
	return data, true
}

// Set stores value with the configured TTL
func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate deletes key
func (r *RedisStore) Invalidate(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	metrics.CacheInvalidations.WithLabelValues(r.Backend()).Inc()
	return nil
}

// Close releases the client connection pool
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}

func (r *RedisStore) Backend() string { return "redis" }
