package increase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSKVConfig configures the JetStream key-value cache backend.
type NATSKVConfig struct {
	// Conn is an established connection. When nil, URL is dialled.
	Conn *nats.Conn
	URL  string
	// Bucket defaults to "increase-cache".
	Bucket string
	// TTL is the bucket-level expiry; per-entry expiry is still enforced on read.
	TTL time.Duration
}

// NATSKVCache shares cached GET responses between processes through a
// JetStream key-value bucket.
type NATSKVCache struct {
	kv    jetstream.KeyValue
	owned *nats.Conn
}

// NewNATSKVCache connects to the bucket, creating it if needed.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	conn := config.Conn

	var owned *nats.Conn

	if conn == nil {
		if config.URL == "" {
			return nil, ErrNATSCacheRequired
		}

		var err error

		conn, err = nats.Connect(config.URL, nats.Name("increase-cache"))
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		owned = conn
	}

	js, err := jetstream.New(conn)
	if err != nil {
		closeOwned(owned)

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = constants.DefaultNATSBucket
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultNATSTimeout)
	defer cancel()

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "Increase API response cache",
		TTL:         config.TTL,
	})
	if err != nil {
		closeOwned(owned)

		return nil, fmt.Errorf("opening key-value bucket %s: %w", bucket, err)
	}

	return &NATSKVCache{kv: kv, owned: owned}, nil
}

func closeOwned(conn *nats.Conn) {
	if conn != nil {
		conn.Close()
	}
}

// Close releases the connection if the cache dialled it.
func (c *NATSKVCache) Close() {
	closeOwned(c.owned)
}

// natsKey maps a request key onto two subject tokens, the hashed resource
// and the hashed full key, so that a resource can be invalidated with a
// "<resource>.*" filter.
func natsKey(key string) string {
	return natsToken(ResourceOf(key)) + "." + natsToken(key)
}

func natsToken(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:16])
}

// Get returns a live entry.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	item, err := c.kv.Get(ctx, natsKey(key))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}

		return nil, fmt.Errorf("reading cache entry: %w", err)
	}

	var entry CacheEntry

	err = json.Unmarshal(item.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("parsing cache entry: %w", err)
	}

	if entry.Expired() {
		_ = c.kv.Delete(ctx, natsKey(key))

		return nil, fmt.Errorf("%w: %s", ErrEntryExpired, key)
	}

	return &entry, nil
}

// Set stores an entry.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(ctx, natsKey(key), data)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}

	return nil
}

// Delete removes an entry.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(ctx, natsKey(key))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	lister, err := c.kv.ListKeys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}
	defer func() { _ = lister.Stop() }()

	for key := range lister.Keys() {
		err := c.kv.Purge(ctx, key)
		if err != nil {
			return fmt.Errorf("purging cache key: %w", err)
		}
	}

	return nil
}

// DeleteResource purges every key stored under resource.
func (c *NATSKVCache) DeleteResource(ctx context.Context, resource string) error {
	lister, err := c.kv.ListKeysFiltered(ctx, natsToken(resource)+".*")
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}
	defer func() { _ = lister.Stop() }()

	for key := range lister.Keys() {
		err := c.kv.Purge(ctx, key)
		if err != nil {
			return fmt.Errorf("purging cache key: %w", err)
		}
	}

	return nil
}

// Has reports whether a live entry exists.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}
