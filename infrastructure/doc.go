// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, persistence, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - storage/sqlite: SQLite-backed collection storage
// - http/standard: Standard library HTTP client with retry logic
// - logger/standard: Simple structured logger implementation
// - logger/logrus: Logrus-backed structured logger
//
// Infrastructure components are designed to be pluggable (easy to swap
// implementations), configurable (accept configuration objects), and
// production-ready (retries, timeouts, error handling).
package infrastructure
