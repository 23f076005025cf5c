package increase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/increase/internal/constants"
)

// Cache lookup and construction errors.
var (
	ErrKeyNotFound           = errors.New("key not found")
	ErrEntryExpired          = errors.New("entry expired")
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrKeyNotFoundInAnyCache = errors.New("key not found in any cache")
)

// CacheEntry is a cached GET response body.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	ETag      string    `json:"etag,omitempty"`
}

// Expired reports whether the entry is past its expiry.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Cache stores GET responses keyed by request URL.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
	// DeleteResource removes the entry for resource and every entry for
	// resource with a query string appended ("resource?...").
	DeleteResource(ctx context.Context, resource string) error
}

// ResourceOf returns the part of a cache key before its query string.
func ResourceOf(key string) string {
	resource, _, _ := strings.Cut(key, "?")

	return resource
}

// CacheType represents the type of cache backend.
type CacheType string

const (
	// CacheTypeMemory represents in-memory cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS represents NATS KV cache.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone represents no caching.
	CacheTypeNone CacheType = "none"
)

// MemoryCache is a bounded in-process cache. When full, the entry closest to
// expiry is evicted.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get returns a live entry.
func (c *MemoryCache) Get(_ context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	if entry.Expired() {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, fmt.Errorf("%w: %s", ErrEntryExpired, key)
	}

	return entry, nil
}

// Set stores an entry, evicting one if the cache is full.
func (c *MemoryCache) Set(_ context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[key] = entry

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]*CacheEntry)
	c.mu.Unlock()

	return nil
}

// Has reports whether a live entry exists.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// DeleteResource removes every entry whose key belongs to resource.
func (c *MemoryCache) DeleteResource(_ context.Context, resource string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if ResourceOf(key) == resource {
			delete(c.entries, key)
		}
	}

	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Cleanup drops expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.Expired() {
			delete(c.entries, key)
		}
	}
}

func (c *MemoryCache) evictLocked() {
	var (
		victim string
		oldest time.Time
	)

	for key, entry := range c.entries {
		if entry.Expired() {
			delete(c.entries, key)

			return
		}

		if victim == "" || entry.ExpiresAt.Before(oldest) {
			victim = key
			oldest = entry.ExpiresAt
		}
	}

	delete(c.entries, victim)
}

// NoOpCache disables response caching. Every lookup misses.
type NoOpCache struct{}

// NewNoOpCache returns the disabled cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always fails with ErrCacheDisabled.
func (*NoOpCache) Get(context.Context, string) (*CacheEntry, error) { return nil, ErrCacheDisabled }

// Set discards the entry.
func (*NoOpCache) Set(context.Context, string, *CacheEntry) error { return nil }

// Delete is a no-op.
func (*NoOpCache) Delete(context.Context, string) error { return nil }

// Clear is a no-op.
func (*NoOpCache) Clear(context.Context) error { return nil }

// Has always reports false.
func (*NoOpCache) Has(context.Context, string) bool { return false }

// DeleteResource is a no-op.
func (*NoOpCache) DeleteResource(context.Context, string) error { return nil }

// CacheChain layers backends from fastest to slowest, typically a MemoryCache
// in front of a NATSKVCache shared between processes.
type CacheChain struct {
	tiers []Cache
}

// NewCacheChain layers the given backends in order.
func NewCacheChain(tiers ...Cache) *CacheChain {
	return &CacheChain{tiers: tiers}
}

// Get returns the first hit and copies it into every faster tier.
func (c *CacheChain) Get(ctx context.Context, key string) (*CacheEntry, error) {
	for depth, tier := range c.tiers {
		entry, err := tier.Get(ctx, key)
		if err != nil {
			continue
		}

		for _, faster := range c.tiers[:depth] {
			_ = faster.Set(ctx, key, entry)
		}

		return entry, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrKeyNotFoundInAnyCache, key)
}

// Set writes through to every tier.
func (c *CacheChain) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return c.each(func(tier Cache) error { return tier.Set(ctx, key, entry) })
}

// Delete removes the key from every tier.
func (c *CacheChain) Delete(ctx context.Context, key string) error {
	return c.each(func(tier Cache) error { return tier.Delete(ctx, key) })
}

// Clear empties every tier.
func (c *CacheChain) Clear(ctx context.Context) error {
	return c.each(func(tier Cache) error { return tier.Clear(ctx) })
}

// DeleteResource invalidates the resource in every tier.
func (c *CacheChain) DeleteResource(ctx context.Context, resource string) error {
	return c.each(func(tier Cache) error { return tier.DeleteResource(ctx, resource) })
}

// Has reports whether any tier holds a live entry.
func (c *CacheChain) Has(ctx context.Context, key string) bool {
	return slices.ContainsFunc(c.tiers, func(tier Cache) bool { return tier.Has(ctx, key) })
}

// each applies fn to every tier and joins the failures.
func (c *CacheChain) each(fn func(Cache) error) error {
	errs := make([]error, 0, len(c.tiers))
	for _, tier := range c.tiers {
		errs = append(errs, fn(tier))
	}

	return errors.Join(errs...)
}

// CacheConfig selects and configures a cache backend.
type CacheConfig struct {
	Type CacheType
	// MaxSize bounds the memory backend.
	MaxSize int
	// NATS configures the NATS KV backend.
	NATS *NATSKVConfig
}

// DefaultCacheConfig returns a memory cache of the default size.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{Type: CacheTypeMemory, MaxSize: constants.DefaultCacheSize}
}

// NewCacheFromConfig builds the backend named by config.Type. A nil config
// or an empty type selects the memory cache.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case "", CacheTypeMemory:
		return NewMemoryCache(config.MaxSize), nil
	case CacheTypeNone:
		return NewNoOpCache(), nil
	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVCache(config.NATS)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
}

// CacheBuilder assembles a CacheConfig fluently.
type CacheBuilder struct {
	config CacheConfig
}

// NewCacheBuilder starts from DefaultCacheConfig.
func NewCacheBuilder() *CacheBuilder {
	return &CacheBuilder{config: *DefaultCacheConfig()}
}

// WithType picks the backend.
func (b *CacheBuilder) WithType(cacheType CacheType) *CacheBuilder {
	b.config.Type = cacheType

	return b
}

// WithMaxSize bounds the memory backend.
func (b *CacheBuilder) WithMaxSize(maxSize int) *CacheBuilder {
	b.config.MaxSize = maxSize

	return b
}

// WithNATSConfig configures the NATS KV backend.
func (b *CacheBuilder) WithNATSConfig(config *NATSKVConfig) *CacheBuilder {
	b.config.NATS = config

	return b
}

// Build creates the configured backend.
func (b *CacheBuilder) Build() (Cache, error) {
	config := b.config

	return NewCacheFromConfig(&config)
}
