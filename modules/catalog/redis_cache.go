package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultRedisPrefix namespaces catalog keys in a shared Redis instance.
const defaultRedisPrefix = "catalog:barcode:"

// RedisCache implements Cache on a go-redis client, serializing products as
// JSON. Barcode.UnmarshalText re-validates on the way out, so a corrupted
// cache entry turns into a miss instead of an invalid value.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache wraps an already-connected client. An empty prefix falls
// back to the package default.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisCache{client: client, prefix: prefix}
}

// Get implements Cache. Backend and decode errors degrade to a miss.
func (c *RedisCache) Get(ctx context.Context, code Barcode) (Product, bool) {
	data, err := c.client.Get(ctx, c.key(code)).Bytes()
	if err != nil {
		return Product{}, false
	}

	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		// Unreadable entry: drop it so it does not keep producing misses.
		c.client.Del(ctx, c.key(code))
		return Product{}, false
	}
	return p, true
}

// Set implements Cache. Write failures are ignored; the cache is best-effort.
func (c *RedisCache) Set(ctx context.Context, code Barcode, p Product, ttl time.Duration) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(code), data, ttl)
}

// Delete implements Cache.
func (c *RedisCache) Delete(ctx context.Context, code Barcode) {
	c.client.Del(ctx, c.key(code))
}

func (c *RedisCache) key(code Barcode) string {
	return c.prefix + code.String()
}

var _ Cache = (*RedisCache)(nil)
