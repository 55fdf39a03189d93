package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/types"
)

const (
	defaultNamespace    = "common"
	defaultTickInterval = 50 * time.Millisecond
)

// Provider owns the translation state for one consumer: the active locale,
// the registered namespace set and the fetched documents. Lookups go through
// T; namespaces referenced before they are loaded get queued and fetched in
// the background.
type Provider struct {
	client  *Client
	log     *logger.Logger
	storage LocaleStorage

	tick     time.Duration
	stop     chan struct{}
	stopOnce sync.Once

	mu         sync.RWMutex
	locale     string
	namespaces []string
	seen       map[string]bool
	documents  map[string]types.Document
	pending    map[string]bool
	deferred   []string
	isLoading  bool
	err        error
	generation uint64
}

func NewProvider(c *Client, log *logger.Logger, storage LocaleStorage, defaultLocale string, namespaces ...string) *Provider {
	p := &Provider{
		client:    c,
		log:       log,
		storage:   storage,
		tick:      defaultTickInterval,
		stop:      make(chan struct{}),
		locale:    NormalizeLocale(defaultLocale),
		seen:      map[string]bool{},
		documents: map[string]types.Document{},
		pending:   map[string]bool{},
	}
	for _, ns := range namespaces {
		if ns == "" || p.seen[ns] {
			continue
		}
		p.seen[ns] = true
		p.namespaces = append(p.namespaces, ns)
	}

	if storage != nil {
		if persisted, err := storage.Load(); err != nil {
			p.err = err
		} else if persisted != "" {
			p.locale = NormalizeLocale(persisted)
		}
	}
	return p
}

// Start loads the registered namespaces and begins draining deferred
// namespace registrations on a ticker. Registration never happens inline in
// T, so a lookup storm cannot grow the namespace list mid-iteration.
func (p *Provider) Start(ctx context.Context) {
	p.Load(ctx)
	go p.run(ctx)
}

func (p *Provider) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

func (p *Provider) run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.drainDeferred()
		}
	}
}

func (p *Provider) drainDeferred() {
	p.mu.Lock()
	queued := p.deferred
	p.deferred = nil
	for _, ns := range queued {
		if !p.seen[ns] {
			p.seen[ns] = true
			p.namespaces = append(p.namespaces, ns)
		}
	}
	p.mu.Unlock()
}

// Load fetches every registered namespace sequentially. A namespace that
// fails to fetch resolves as an empty document; the rest still load.
func (p *Provider) Load(ctx context.Context) {
	p.mu.Lock()
	locale := p.locale
	generation := p.generation
	namespaces := append([]string(nil), p.namespaces...)
	p.isLoading = true
	p.mu.Unlock()

	for _, ns := range namespaces {
		doc := p.client.FetchNamespace(ctx, locale, ns)
		p.storeDocument(generation, ns, doc)
	}

	p.mu.Lock()
	if p.generation == generation {
		p.isLoading = false
	}
	p.mu.Unlock()
}

func (p *Provider) storeDocument(generation uint64, namespace string, doc types.Document) {
	p.mu.Lock()
	defer p.mu.Unlock()
	// A locale switch bumped the generation; this fetch belongs to the old
	// locale and must not land.
	if p.generation != generation {
		return
	}
	p.documents[namespace] = doc
}

// EnsureNamespace makes a namespace available for lookups. The fetch is
// deduplicated per namespace, and the registration itself is deferred to the
// scheduler tick.
func (p *Provider) EnsureNamespace(ctx context.Context, namespace string) {
	if namespace == "" {
		return
	}
	p.mu.Lock()
	if _, loaded := p.documents[namespace]; loaded || p.pending[namespace] {
		p.mu.Unlock()
		return
	}
	p.pending[namespace] = true
	p.deferred = append(p.deferred, namespace)
	locale := p.locale
	generation := p.generation
	p.mu.Unlock()

	go func() {
		doc := p.client.FetchNamespace(ctx, locale, namespace)
		p.storeDocument(generation, namespace, doc)
		p.mu.Lock()
		delete(p.pending, namespace)
		p.mu.Unlock()
	}()
}

// SetLocale switches the active locale, drops the local cache and reloads in
// the background. In-flight fetches for the old locale are discarded when
// they land; the newest locale always wins.
func (p *Provider) SetLocale(ctx context.Context, locale string) {
	locale = NormalizeLocale(locale)

	p.mu.Lock()
	if locale == p.locale {
		p.mu.Unlock()
		return
	}
	p.locale = locale
	p.generation++
	p.mu.Unlock()

	p.client.ClearCache("", "")
	if p.storage != nil {
		if err := p.storage.Save(locale); err != nil {
			p.mu.Lock()
			p.err = err
			p.mu.Unlock()
			if p.log != nil {
				p.log.Warn("Failed to persist locale", "locale", locale, "error", err)
			}
		}
	}

	go p.Load(ctx)
}

func (p *Provider) Locale() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.locale
}

func (p *Provider) IsLoading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isLoading
}

func (p *Provider) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}

// Namespaces returns the registered namespaces in insertion order.
func (p *Provider) Namespaces() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.namespaces...)
}

// T resolves a key to its translated string. A lookup can never break the
// caller: an unloaded namespace queues a background fetch and the key itself
// is returned, and any panic inside resolution degrades to the key literal.
func (p *Provider) T(key string, params map[string]string, namespace ...string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			if p.log != nil {
				p.log.Warn("Translation lookup panicked", "key", key, "panic", r)
			}
			result = key
		}
	}()

	ns := p.defaultNamespace()
	if len(namespace) > 0 && namespace[0] != "" {
		ns = namespace[0]
	}

	p.mu.RLock()
	doc, loaded := p.documents[ns]
	p.mu.RUnlock()

	if !loaded {
		// Placeholder behavior: the key comes back untouched, params and all,
		// until the fetch lands.
		p.EnsureNamespace(context.Background(), ns)
		return key
	}

	value, ok, partial, hasPartial := lookup(doc, ns, key)
	if ok {
		return Interpolate(value, params)
	}
	if len(params) > 0 {
		// A walk that stopped on a string is still worth something: the
		// original text is interpolated rather than discarded.
		if hasPartial {
			return Interpolate(partial, params)
		}
		if strings.Contains(key, "{") {
			return Interpolate(key, params)
		}
	}
	return key
}

func (p *Provider) defaultNamespace() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.namespaces) > 0 {
		return p.namespaces[0]
	}
	return defaultNamespace
}
