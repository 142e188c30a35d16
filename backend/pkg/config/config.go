package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apperrors "gourmet-graph/backend/pkg/errors"
)

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Neo4j
	Neo4jURI         string
	Neo4jUser        string
	Neo4jPassword    string
	Neo4jDatabase    string
	Neo4jMaxPoolSize int
	QueryTimeout     time.Duration // Bound on every gateway call

	// Circuit breaker around the gateway
	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration

	// Food detail read-through cache
	CacheBackend string
	CacheTTL     time.Duration
	RedisAddr    string
	RedisDB      int

	// HTTP
	CORSAllowedOrigins []string

	// Recommendation composer
	StrategyTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		Neo4jURI:                getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:               getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:           getEnv("NEO4J_PASSWORD", "password"),
		Neo4jDatabase:           getEnv("NEO4J_DATABASE", ""),
		Neo4jMaxPoolSize:        getEnvInt("NEO4J_MAX_POOL_SIZE", 50),
		QueryTimeout:            getEnvDuration("NEO4J_QUERY_TIMEOUT", 10*time.Second),
		BreakerFailureThreshold: uint32(getEnvInt("BREAKER_FAILURE_THRESHOLD", 5)),
		BreakerOpenTimeout:      getEnvDuration("BREAKER_OPEN_TIMEOUT", 30*time.Second),
		CacheBackend:            strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendMemory)),
		CacheTTL:                getEnvDuration("CACHE_TTL", 5*time.Minute),
		RedisAddr:               getEnv("REDIS_ADDR", ""),
		RedisDB:                 getEnvInt("REDIS_DB", 0),
		CORSAllowedOrigins:      getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		StrategyTimeout:         getEnvDuration("COMPOSER_STRATEGY_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Neo4jURI == "" {
		return apperrors.NewConfigMissingRequired("NEO4J_URI")
	}
	if c.Neo4jUser == "" {
		return apperrors.NewConfigMissingRequired("NEO4J_USER")
	}
	if c.Neo4jPassword == "" {
		return apperrors.NewConfigMissingRequired("NEO4J_PASSWORD")
	}
	if c.QueryTimeout <= 0 {
		return apperrors.NewConfigValidationFailed("NEO4J_QUERY_TIMEOUT", "must be positive")
	}
	if c.Neo4jMaxPoolSize < 1 {
		return apperrors.NewConfigValidationFailed("NEO4J_MAX_POOL_SIZE", "must be at least 1")
	}
	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendNone:
	case CacheBackendRedis:
		if c.RedisAddr == "" {
			return apperrors.NewConfigMissingRequired("REDIS_ADDR")
		}
	default:
		return apperrors.NewConfigValidationFailed("CACHE_BACKEND", fmt.Sprintf("unknown backend %q", c.CacheBackend))
	}
	if c.CacheBackend != CacheBackendNone && c.CacheTTL <= 0 {
		return apperrors.NewConfigValidationFailed("CACHE_TTL", "must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
