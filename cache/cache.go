// Package cache provides short-lived Redis memoization for expensive
// aggregation calls.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache wraps a Redis client. The handle is constructed once at process
// start and passed to whatever needs it.
type Cache struct {
	client *redis.Client
}

// New connects a cache to the given Redis address.
func New(addr, password string) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
	}
}

// Memoize returns the cached value for key when present, otherwise calls fn
// and stores its result for ttl. Cache errors are treated as misses; a
// failed Set never fails the call. A nil Cache disables memoization.
func Memoize[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var result T

	if c == nil {
		return fn()
	}

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(cached, &result); jsonErr == nil {
			return result, nil
		}
	}

	result, err = fn()
	if err != nil {
		return result, err
	}

	if data, err := json.Marshal(result); err == nil {
		c.client.Set(ctx, key, data, ttl)
	}

	return result, nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
