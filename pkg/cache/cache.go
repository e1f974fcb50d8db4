// Package cache stores computed layouts so that unchanged descriptions are
// not laid out twice.
//
// Entries are opaque byte slices addressed by string keys. Keys are built by
// a [Keyer] from a content hash of what was laid out, so a description that
// changes in any way misses the cache.
//
// Backends:
//   - [NullCache] disables caching.
//   - [FileCache] keeps entries under a local directory, for the CLI.
//   - [RedisCache] shares entries between layout service instances.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the entry stored under key. A missing or expired entry is
	// reported as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 keeps the entry until deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry stored under key, if any.
	Delete(ctx context.Context, key string) error

	// Close releases the resources held by the cache.
	Close() error
}
