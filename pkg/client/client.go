package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/types"
)

const defaultCacheTTL = 5 * time.Minute

type Config struct {
	BaseURL   string
	ProjectID string
	// HTTPClient defaults to a client with a 10s timeout.
	HTTPClient *http.Client
	CacheTTL   time.Duration
	Logger     *logger.Logger
}

type cacheEntry struct {
	set       types.TranslationSet
	expiresAt time.Time
}

// Client fetches translation documents over HTTP and keeps them in a local
// TTL cache so repeated lookups do not hit the network.
type Client struct {
	baseURL   string
	projectID string
	http      *http.Client
	ttl       time.Duration
	log       *logger.Logger

	mu    sync.RWMutex
	cache map[string]cacheEntry

	now func() time.Time
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		projectID: cfg.ProjectID,
		http:      httpClient,
		ttl:       ttl,
		log:       cfg.Logger,
		cache:     map[string]cacheEntry{},
		now:       time.Now,
	}
}

// NormalizeLocale maps bare language codes to their canonical regional form.
func NormalizeLocale(locale string) string {
	if locale == "zh" {
		return "zh-CN"
	}
	return locale
}

func cacheKey(locale, namespace string) string {
	if namespace == "" {
		return locale
	}
	return locale + ":" + namespace
}

// FetchNamespace returns the document for one namespace. Any failure, network
// or decode, yields an empty document: a missing translation renders as its
// key, which beats a broken page.
func (c *Client) FetchNamespace(ctx context.Context, locale, namespace string) types.Document {
	locale = NormalizeLocale(locale)
	key := cacheKey(locale, namespace)

	if set, ok := c.cached(key); ok {
		if doc, ok := set[namespace]; ok {
			return doc
		}
		return types.Document{}
	}

	set, err := c.fetch(ctx, locale, namespace)
	if err != nil {
		c.warn("Translation fetch failed", "locale", locale, "namespace", namespace, "error", err)
		return types.Document{}
	}
	c.store(key, set)

	if doc, ok := set[namespace]; ok {
		return doc
	}
	return types.Document{}
}

// FetchAll returns every namespace document for a locale under the
// whole-locale cache key.
func (c *Client) FetchAll(ctx context.Context, locale string) types.TranslationSet {
	locale = NormalizeLocale(locale)
	key := cacheKey(locale, "")

	if set, ok := c.cached(key); ok {
		return set
	}

	set, err := c.fetch(ctx, locale, "")
	if err != nil {
		c.warn("Translation fetch failed", "locale", locale, "error", err)
		return types.TranslationSet{}
	}
	c.store(key, set)
	return set
}

func (c *Client) fetch(ctx context.Context, locale, namespace string) (types.TranslationSet, error) {
	url := fmt.Sprintf("%s/api/v1/translations/%s/%s", c.baseURL, c.projectID, locale)
	if namespace != "" {
		url += "/" + namespace
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var set types.TranslationSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("decoding translation payload: %w", err)
	}
	return set, nil
}

func (c *Client) cached(key string) (types.TranslationSet, bool) {
	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.set, true
}

func (c *Client) store(key string, set types.TranslationSet) {
	c.mu.Lock()
	c.cache[key] = cacheEntry{set: set, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// ClearCache drops local entries. With no arguments everything goes; with a
// locale, every entry for that locale goes (whole-locale and per-namespace);
// with both, only the one namespace entry goes.
func (c *Client) ClearCache(locale, namespace string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if locale == "" {
		c.cache = map[string]cacheEntry{}
		return
	}
	locale = NormalizeLocale(locale)
	if namespace != "" {
		delete(c.cache, cacheKey(locale, namespace))
		return
	}
	for key := range c.cache {
		if key == locale || strings.HasPrefix(key, locale+":") {
			delete(c.cache, key)
		}
	}
}

func (c *Client) warn(msg string, kv ...any) {
	if c.log != nil {
		c.log.Warn(msg, kv...)
	}
}
