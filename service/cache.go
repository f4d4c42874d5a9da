package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/MindFiv/FivcGlue/caches"
)

// CacheService mediates between HTTP handlers and the selected cache
// backend, adding logging and request metrics
type CacheService struct {
	backend string
	cache   caches.Cache
}

// NewCacheService creates a new CacheService instance around the backend
// registered under the given name
func NewCacheService(backend string, cache caches.Cache) *CacheService {
	return &CacheService{
		backend: backend,
		cache:   cache,
	}
}

// Backend returns the name the backend was registered under
func (s CacheService) Backend() string {
	return s.backend
}

// Healthy reports whether the backend has a usable connection
func (s CacheService) Healthy() bool {
	return s.cache.Connected()
}

// Set stores value under key with the given expiration
func (s CacheService) Set(key string, value []byte, ttl time.Duration) error {
	if err := s.cache.SetValue(key, value, ttl); err != nil {
		slog.Error("failed to store cache entry", "error", err, "key", key, "backend", s.backend)
		cacheRequests.WithLabelValues("set", "error").Inc()
		return err
	}

	cacheRequests.WithLabelValues("set", "ok").Inc()
	return nil
}

// Get retrieves the value stored under key, or caches.ErrNotFound on a miss
func (s CacheService) Get(key string) ([]byte, error) {
	value, err := s.cache.GetValue(key)
	if errors.Is(err, caches.ErrNotFound) {
		cacheRequests.WithLabelValues("get", "miss").Inc()
		return nil, err
	}
	if err != nil {
		slog.Error("failed to fetch cache entry", "error", err, "key", key, "backend", s.backend)
		cacheRequests.WithLabelValues("get", "error").Inc()
		return nil, err
	}

	cacheRequests.WithLabelValues("get", "hit").Inc()
	return value, nil
}

// Delete removes the entry stored under key, or caches.ErrNotFound when
// no such entry exists
func (s CacheService) Delete(key string) error {
	err := s.cache.DeleteValue(key)
	if errors.Is(err, caches.ErrNotFound) {
		cacheRequests.WithLabelValues("delete", "miss").Inc()
		return err
	}
	if err != nil {
		slog.Error("failed to delete cache entry", "error", err, "key", key, "backend", s.backend)
		cacheRequests.WithLabelValues("delete", "error").Inc()
		return err
	}

	cacheRequests.WithLabelValues("delete", "ok").Inc()
	return nil
}
