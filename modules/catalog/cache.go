package catalog

import (
	"context"
	"sync"
	"time"
)

// Cache stores barcode lookup results for CachedRepository. Implementations
// are best-effort: a failing backend degrades to cache misses, it never
// fails a lookup.
type Cache interface {
	// Get returns the cached product for code, or false on a miss.
	Get(ctx context.Context, code Barcode) (Product, bool)

	// Set stores p under code for at most ttl.
	Set(ctx context.Context, code Barcode, p Product, ttl time.Duration)

	// Delete drops the entry for code, if any.
	Delete(ctx context.Context, code Barcode)
}

// DefaultCacheTTL is used by NewCachedRepository when no TTL is given.
const DefaultCacheTTL = 5 * time.Minute

// CachedRepository decorates a Repository with a read-through cache on
// FindByBarcode. FindByDescription always hits the inner repository, and
// Save writes through and invalidates the barcode entry.
type CachedRepository struct {
	inner Repository
	cache Cache
	ttl   time.Duration
}

// NewCachedRepository wraps inner with cache. A non-positive ttl falls back
// to DefaultCacheTTL.
func NewCachedRepository(inner Repository, cache Cache, ttl time.Duration) *CachedRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedRepository{inner: inner, cache: cache, ttl: ttl}
}

// FindByBarcode implements Repository.
func (r *CachedRepository) FindByBarcode(ctx context.Context, code Barcode) (Product, error) {
	if p, ok := r.cache.Get(ctx, code); ok {
		return p, nil
	}

	p, err := r.inner.FindByBarcode(ctx, code)
	if err != nil {
		return Product{}, err
	}
	r.cache.Set(ctx, code, p, r.ttl)
	return p, nil
}

// FindByDescription implements Repository. Description lookups return sets
// that any Save may change, so they are not cached.
func (r *CachedRepository) FindByDescription(ctx context.Context, desc Description) ([]Product, error) {
	return r.inner.FindByDescription(ctx, desc)
}

// Save implements Repository, invalidating the cached entry after a
// successful write so the next lookup observes the new state.
func (r *CachedRepository) Save(ctx context.Context, p Product) error {
	if err := r.inner.Save(ctx, p); err != nil {
		return err
	}
	r.cache.Delete(ctx, p.Barcode)
	return nil
}

var _ Repository = (*CachedRepository)(nil)

// MemoryCache is a TTL cache keyed by Barcode. Expired entries are dropped
// lazily on access; there is no background janitor.
type MemoryCache struct {
	mu    sync.Mutex
	items map[Barcode]cacheEntry
	now   func() time.Time
}

type cacheEntry struct {
	product   Product
	expiresAt time.Time
}

// NewMemoryCache returns an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[Barcode]cacheEntry),
		now:   time.Now,
	}
}

// Get implements Cache.
func (c *MemoryCache) Get(ctx context.Context, code Barcode) (Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[code]
	if !ok {
		return Product{}, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.items, code)
		return Product{}, false
	}
	return entry.product, true
}

// Set implements Cache.
func (c *MemoryCache) Set(ctx context.Context, code Barcode, p Product, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[code] = cacheEntry{product: p, expiresAt: c.now().Add(ttl)}
}

// Delete implements Cache.
func (c *MemoryCache) Delete(ctx context.Context, code Barcode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, code)
}

var _ Cache = (*MemoryCache)(nil)
