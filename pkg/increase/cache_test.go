package increase_test

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := increase.NewMemoryCache(10)
	ctx := context.Background()

	entry := &increase.CacheEntry{
		Data:      []byte(`{"id":"account_1"}`),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		ETag:      "abc123",
	}

	err := cache.Set(ctx, "GET https://api.increase.com/accounts/account_1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "GET https://api.increase.com/accounts/account_1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := increase.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, increase.ErrKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := increase.NewMemoryCache(10)
	ctx := context.Background()

	entry := &increase.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(-1 * time.Hour), // Already expired
	}

	require.NoError(t, cache.Set(ctx, "key1", entry))

	_, err := cache.Get(ctx, "key1")
	require.ErrorIs(t, err, increase.ErrEntryExpired)
	assert.Equal(t, 0, cache.Len(), "expired entries are dropped on read")
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := increase.NewMemoryCache(10)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		_ = cache.Set(ctx, key, &increase.CacheEntry{Data: []byte(key), ExpiresAt: time.Now().Add(time.Hour)})
	}

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
	assert.False(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_MaxSize(t *testing.T) {
	t.Parallel()

	cache := increase.NewMemoryCache(2)
	ctx := context.Background()

	for i, key := range []string{"a", "b", "c"} {
		_ = cache.Set(ctx, key, &increase.CacheEntry{
			Data:      []byte(key),
			ExpiresAt: time.Now().Add(time.Duration(i+1) * time.Hour),
		})
	}

	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Has(ctx, "a"), "the entry closest to expiry is evicted")
	assert.True(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_Cleanup(t *testing.T) {
	t.Parallel()

	cache := increase.NewMemoryCache(10)
	ctx := context.Background()

	_ = cache.Set(ctx, "expired", &increase.CacheEntry{Data: []byte("expired"), ExpiresAt: time.Now().Add(-time.Hour)})
	_ = cache.Set(ctx, "valid", &increase.CacheEntry{Data: []byte("valid"), ExpiresAt: time.Now().Add(time.Hour)})

	cache.Cleanup()

	assert.Equal(t, 1, cache.Len())
	assert.True(t, cache.Has(ctx, "valid"))
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := increase.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", &increase.CacheEntry{Data: []byte("x")}))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, increase.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key"))
}

func TestCacheChain(t *testing.T) {
	t.Parallel()

	l1 := increase.NewMemoryCache(10)
	l2 := increase.NewMemoryCache(10)
	chain := increase.NewCacheChain(l1, l2)
	ctx := context.Background()

	entry := &increase.CacheEntry{Data: []byte("from l2"), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, l2.Set(ctx, "key", entry))

	retrieved, err := chain.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("from l2"), retrieved.Data)
	assert.True(t, l1.Has(ctx, "key"), "a hit in a slower tier backfills the faster ones")

	require.NoError(t, chain.Delete(ctx, "key"))
	assert.False(t, chain.Has(ctx, "key"))

	_, err = chain.Get(ctx, "key")
	require.ErrorIs(t, err, increase.ErrKeyNotFoundInAnyCache)
}

func TestCacheFactory(t *testing.T) {
	t.Parallel()

	t.Run("memory", func(t *testing.T) {
		t.Parallel()

		cache, err := increase.NewCacheFromConfig(&increase.CacheConfig{Type: increase.CacheTypeMemory, MaxSize: 5})
		require.NoError(t, err)
		assert.IsType(t, &increase.MemoryCache{}, cache)
	})

	t.Run("default config", func(t *testing.T) {
		t.Parallel()

		cache, err := increase.NewCacheFromConfig(nil)
		require.NoError(t, err)
		assert.IsType(t, &increase.MemoryCache{}, cache)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		cache, err := increase.NewCacheBuilder().WithType(increase.CacheTypeNone).Build()
		require.NoError(t, err)
		assert.IsType(t, &increase.NoOpCache{}, cache)
	})

	t.Run("nats without config", func(t *testing.T) {
		t.Parallel()

		_, err := increase.NewCacheBuilder().WithType(increase.CacheTypeNATS).Build()
		require.ErrorIs(t, err, increase.ErrNATSConfigRequired)
	})

	t.Run("nats without connection", func(t *testing.T) {
		t.Parallel()

		_, err := increase.NewCacheBuilder().
			WithType(increase.CacheTypeNATS).
			WithNATSConfig(&increase.NATSKVConfig{Bucket: "increase-cache"}).
			Build()
		require.ErrorIs(t, err, increase.ErrNATSCacheRequired)
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		_, err := increase.NewCacheBuilder().WithType("redis").Build()
		require.ErrorIs(t, err, increase.ErrUnsupportedCacheType)
	})
}

func TestCache_DeleteResource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	entry := func() *increase.CacheEntry {
		return &increase.CacheEntry{Data: []byte(`{}`), ExpiresAt: time.Now().Add(time.Hour)}
	}

	l1 := increase.NewMemoryCache(10)
	l2 := increase.NewMemoryCache(10)
	chain := increase.NewCacheChain(l1, l2)

	keys := []string{
		"GET https://api.increase.com/accounts",
		"GET https://api.increase.com/accounts?limit=10",
		"GET https://api.increase.com/accounts?cursor=page_2",
		"GET https://api.increase.com/accounts/account_1",
		"GET https://api.increase.com/accounts_other?limit=1",
	}
	for _, key := range keys {
		require.NoError(t, chain.Set(ctx, key, entry()))
	}

	require.NoError(t, chain.DeleteResource(ctx, "GET https://api.increase.com/accounts"))

	for _, tier := range []*increase.MemoryCache{l1, l2} {
		assert.Equal(t, 2, tier.Len())
		assert.True(t, tier.Has(ctx, "GET https://api.increase.com/accounts/account_1"))
		assert.True(t, tier.Has(ctx, "GET https://api.increase.com/accounts_other?limit=1"))
		assert.False(t, tier.Has(ctx, "GET https://api.increase.com/accounts?limit=10"))
	}

	assert.Equal(t, "GET /accounts", increase.ResourceOf("GET /accounts?limit=1"))
	require.NoError(t, increase.NewNoOpCache().DeleteResource(ctx, "GET /accounts"))
}
