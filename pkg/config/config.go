// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage, and extraction settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains persistence configuration
	Storage StorageConfig

	// Extraction contains content-extraction tuning
	Extraction ExtractionConfig

	// Logger contains logging configuration
	Logger LoggerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per minute per client IP
	RateLimit int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	// SQLitePath is the path to the SQLite database file
	SQLitePath string
}

// ExtractionConfig holds tuning knobs for the extraction pipelines.
// The gate thresholds default to the values the quality heuristics were
// calibrated against; they are configurable so tuning needs no code change.
type ExtractionConfig struct {
	// ReaderBaseURL is the base URL of the page reader service
	ReaderBaseURL string

	// MinContentLength is the minimum usable content body length
	MinContentLength int

	// BlockTitleTokenLimit is the token-usage ceiling under which a
	// suspect title is treated as a block page
	BlockTitleTokenLimit int

	// MaxAttempts is the total retry budget for video metadata requests
	MaxAttempts int

	// RetryBackoffMS is the linear backoff step between attempts
	RetryBackoffMS int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	// Backend selects the logger implementation (standard/logrus)
	Backend string

	// Level is the minimum level to emit (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "stash.db"),
		},
		Extraction: ExtractionConfig{
			ReaderBaseURL:        getEnvOrDefault("READER_BASE_URL", "https://r.jina.ai"),
			MinContentLength:     getEnvAsIntOrDefault("MIN_CONTENT_LENGTH", 100),
			BlockTitleTokenLimit: getEnvAsIntOrDefault("BLOCK_TITLE_TOKEN_LIMIT", 100),
			MaxAttempts:          getEnvAsIntOrDefault("VIDEO_MAX_ATTEMPTS", 3),
			RetryBackoffMS:       getEnvAsIntOrDefault("VIDEO_RETRY_BACKOFF_MS", 500),
		},
		Logger: LoggerConfig{
			Backend: getEnvOrDefault("LOG_BACKEND", "logrus"),
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Extraction.ReaderBaseURL == "" {
		return errors.New("reader base URL cannot be empty")
	}

	if c.Extraction.MinContentLength < 1 {
		return errors.New("minimum content length must be at least 1")
	}

	if c.Extraction.MaxAttempts < 1 {
		return errors.New("video extraction needs at least one attempt")
	}

	if c.Logger.Backend != "standard" && c.Logger.Backend != "logrus" {
		return errors.New("logger backend must be 'standard' or 'logrus'")
	}

	return nil
}
