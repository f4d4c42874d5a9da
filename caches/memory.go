package caches

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryCache is a process-local cache backend. It is always connected
// and loses its contents on restart
type MemoryCache struct {
	c *ttlcache.Cache[string, []byte]
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates an in-memory cache and starts its expiration
// janitor. Call Close to stop it
func NewMemoryCache() *MemoryCache {
	// Expiration is fixed at write time; reads must not extend it.
	c := ttlcache.New[string, []byte](
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go c.Start()

	return &MemoryCache{c: c}
}

func (m *MemoryCache) SetValue(key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, normalizeValue(value), ttl)
	return nil
}

func (m *MemoryCache) GetValue(key string) ([]byte, error) {
	item := m.c.Get(key)
	if item == nil || item.IsExpired() {
		return nil, ErrNotFound
	}

	return item.Value(), nil
}

func (m *MemoryCache) DeleteValue(key string) error {
	if m.c.Get(key) == nil {
		return ErrNotFound
	}
	m.c.Delete(key)

	return nil
}

func (m *MemoryCache) Connected() bool {
	return true
}

// Close stops the expiration janitor
func (m *MemoryCache) Close() error {
	m.c.Stop()
	return nil
}
