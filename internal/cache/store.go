// Package cache provides the key-value store used by the cache-aside read
// path. A miss is a distinct, expected condition (ErrCacheMiss); any other
// error means the cache itself is unhealthy and callers degrade to the
// authoritative store.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss indicates that the key holds no value. It is the only miss
// signal; all other errors are transport or store failures.
var ErrCacheMiss = errors.New("cache: key not found")

// NoExpiry disables expiry for a Set call.
const NoExpiry time.Duration = 0

// Store is a key-value cache client.
type Store interface {
	// Get returns the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key. A positive ttl bounds the entry's
	// lifetime; NoExpiry keeps it until overwritten or deleted.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}
