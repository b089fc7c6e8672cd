// Package cache provides the key-value store the catalog is cached in.
package cache

import (
	"context"
	"time"
)

// SchemaVersion prefixes every key. Increment it when the cached data
// structure changes so old entries are never read back.
const SchemaVersion = "v1"

// Backend names
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Store is a byte-oriented key-value cache
type Store interface {
	// Get returns the value and true on a hit, nil and false on a miss
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Purge removes every entry owned by this store
	Purge(ctx context.Context) error
	Stats() Stats
	Close() error
}

// Stats are cumulative cache counters
type Stats struct {
	Backend string `json:"backend"`
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
	Size    int    `json:"size"`
}

// Config configures the cache
type Config struct {
	Backend   string
	Size      int
	TTL       time.Duration
	RedisAddr string
	RedisDB   int
	RedisPass string
	KeyPrefix string
}

// DefaultConfig returns an in-memory cache of 100 entries kept for 5 minutes
func DefaultConfig() Config {
	return Config{
		Backend:   BackendMemory,
		Size:      100,
		TTL:       5 * time.Minute,
		KeyPrefix: "investsim",
	}
}

func versionedKey(prefix, key string) string {
	if prefix == "" {
		return SchemaVersion + ":" + key
	}
	return prefix + ":" + SchemaVersion + ":" + key
}
