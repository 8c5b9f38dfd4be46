// Package cache provides the injected lookup cache used by the outlook
// layer. The cache is owned by the calling application and passed in
// explicitly; the scoring core holds no hidden static state.
package cache

import (
	"context"
	"time"
)

// Cache is a string key/value store with per-entry TTL and a Clear
// operation. Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached value and whether the key was present and
	// unexpired.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a value. A non-positive ttl means the entry never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error
}
