package caches

import (
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/go-redis/redis/v7"
)

// DefaultRedisAddr is used when no address is configured.
const DefaultRedisAddr = "localhost:6379"

const (
	connectAttempts     = 3
	connectInitialDelay = 200 * time.Millisecond
	connectMaxDelay     = 2 * time.Second
)

// RedisCache stores entries in a Redis server, delegating expiration to
// Redis itself
type RedisCache struct {
	client *redis.Client
}

// verify RedisCache implements the cache interface in compile time
var _ Cache = (*RedisCache)(nil)

// NewRedisCache connects to the Redis server at addr and verifies the
// connection with a ping, retrying with backoff before giving up
func NewRedisCache(addr, pwd string, db int) (*RedisCache, error) {
	if addr == "" {
		addr = DefaultRedisAddr
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pwd,
		DB:       db,
	})

	err := retry.Do(
		func() error { return client.Ping().Err() },
		retry.Attempts(connectAttempts),
		retry.Delay(connectInitialDelay),
		retry.MaxDelay(connectMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("redis ping failed", "attempt", n+1, "addr", addr, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) SetValue(key string, value []byte, ttl time.Duration) error {
	return c.client.Set(key, normalizeValue(value), ttl).Err()
}

func (c *RedisCache) GetValue(key string) ([]byte, error) {
	value, err := c.client.Get(key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// An empty reply can surface as a nil slice.
	return normalizeValue(value), nil
}

func (c *RedisCache) DeleteValue(key string) error {
	count, err := c.client.Del(key).Result()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// Connected reports whether the Redis server currently answers pings
func (c *RedisCache) Connected() bool {
	return c.client.Ping().Err() == nil
}

// Close releases the underlying client connections
func (c *RedisCache) Close() error {
	return c.client.Close()
}
