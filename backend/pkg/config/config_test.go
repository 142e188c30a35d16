package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gourmet-graph/backend/pkg/errors"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "")
	t.Setenv("NEO4J_QUERY_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, CacheBackendMemory, cfg.CacheBackend)
	assert.Equal(t, 10*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("NEO4J_QUERY_TIMEOUT", "3s")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.QueryTimeout)
	assert.Equal(t, CacheBackendRedis, cfg.CacheBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestValidate_RedisRequiresAddr(t *testing.T) {
	cfg := &Config{
		Neo4jURI:         "bolt://localhost:7687",
		Neo4jUser:        "neo4j",
		Neo4jPassword:    "password",
		Neo4jMaxPoolSize: 10,
		QueryTimeout:     time.Second,
		CacheBackend:     CacheBackendRedis,
		CacheTTL:         time.Minute,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeConfig))
}

func TestValidate_UnknownCacheBackend(t *testing.T) {
	cfg := &Config{
		Neo4jURI:         "bolt://localhost:7687",
		Neo4jUser:        "neo4j",
		Neo4jPassword:    "password",
		Neo4jMaxPoolSize: 10,
		QueryTimeout:     time.Second,
		CacheBackend:     "memcached",
	}

	assert.Error(t, cfg.Validate())
}
