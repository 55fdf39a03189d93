package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/types"
)

// KeyPrefix is shared by every cached translation payload; bulk clears scan it.
const KeyPrefix = "translations:"

// DocumentCache memoizes aggregated translation payloads. Read errors are
// misses and write errors are logged, never propagated; the row store stays
// the source of truth.
type DocumentCache struct {
	log   *logger.Logger
	store Store
	ttl   time.Duration
}

func NewDocumentCache(log *logger.Logger, store Store, ttl time.Duration) *DocumentCache {
	return &DocumentCache{
		log:   log.With("service", "DocumentCache"),
		store: store,
		ttl:   ttl,
	}
}

// Key computes the deterministic cache key for an aggregation scope. The
// namespace segment is omitted entirely when not given, so a whole-locale
// payload and a namespace payload can never share a key.
func Key(projectID uuid.UUID, locale string, namespace ...string) string {
	if len(namespace) > 0 && namespace[0] != "" {
		return fmt.Sprintf("%s%s:%s:%s", KeyPrefix, projectID, locale, namespace[0])
	}
	return fmt.Sprintf("%s%s:%s", KeyPrefix, projectID, locale)
}

func (c *DocumentCache) Read(ctx context.Context, key string) (types.TranslationSet, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}
	raw, ok := c.store.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var payload types.TranslationSet
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		c.log.Warn("Corrupt cache payload, treating as miss", "key", key, "error", err)
		return nil, false
	}
	return payload, true
}

func (c *DocumentCache) Write(ctx context.Context, key string, payload types.TranslationSet) {
	if c == nil || c.store == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		c.log.Warn("Failed to encode cache payload", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, string(raw), c.ttl); err != nil {
		c.log.Warn("Cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops both the namespace-specific entry and the whole-locale
// entry: the whole-locale payload embeds the namespace's rows and would
// otherwise serve stale content.
func (c *DocumentCache) Invalidate(ctx context.Context, projectID uuid.UUID, locale, namespace string) {
	if c == nil || c.store == nil {
		return
	}
	keys := []string{
		Key(projectID, locale, namespace),
		Key(projectID, locale),
	}
	if err := c.store.Del(ctx, keys...); err != nil {
		c.log.Warn("Cache invalidation failed", "keys", keys, "error", err)
	}
}

// Clear removes every cached translation payload.
func (c *DocumentCache) Clear(ctx context.Context) (int, error) {
	if c == nil || c.store == nil {
		return 0, nil
	}
	keys, err := c.store.KeysByPrefix(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("listing cache keys: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := c.store.Del(ctx, keys...); err != nil {
		return 0, fmt.Errorf("deleting cache keys: %w", err)
	}
	return len(keys), nil
}
