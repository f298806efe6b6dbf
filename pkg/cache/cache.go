// Package cache stores rendered artifacts and layout snapshots between runs.
//
// Three backends share the [Cache] interface:
//   - [FileCache] for the CLI, under the user's cache directory
//   - [RedisCache] for the HTTP host, shared between replicas
//   - [NullCache] when caching is disabled
//
// Keys come from a [Keyer]. The default keyer hashes the dataset together
// with every option that changes the output, so a key never collides across
// layout settings. [NewScopedKeyer] prefixes keys per diagram instance.
package cache

import (
	"context"
	"errors"
	"time"
)

// Default lifetimes per entry kind.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("cache closed")

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
