// Package cache wraps the translation cache: a small key-value Store
// abstraction plus the DocumentCache that knows how translation payloads are
// keyed, stored and invalidated. The cache is pure memoization: every entry
// is reproducible from the row store, and any cache failure degrades to a
// miss.
package cache

import (
	"context"
	"time"
)

// Store is the key-value surface the document cache consumes.
type Store interface {
	// Get returns the raw value, or ("", false) on miss or error.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key with the given TTL (0 = no expiry).
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del removes keys. Missing keys are not an error.
	Del(ctx context.Context, keys ...string) error

	// KeysByPrefix lists keys starting with prefix. Used for bulk clears.
	KeysByPrefix(ctx context.Context, prefix string) ([]string, error)
}
