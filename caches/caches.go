package caches

import (
	"errors"
	"time"
)

// ErrNotFound is returned by GetValue when a key is missing or has expired.
// It is distinct from a stored empty value.
var ErrNotFound = errors.New("cache: key not found")

// Cache represents an interface for a cache backend storing opaque byte
// values with per-entry expiration
type Cache interface {
	// SetValue stores value under key, expiring ttl from now. A nil value
	// is stored as empty bytes. Overwriting an existing key resets its TTL
	SetValue(key string, value []byte, ttl time.Duration) error
	// GetValue retrieves the bytes stored under key, or ErrNotFound when
	// the key is missing or expired
	GetValue(key string) ([]byte, error)
	// DeleteValue removes the entry stored under key
	DeleteValue(key string) error
	// Connected reports whether the backend has a usable connection
	Connected() bool
}

// normalizeValue maps a nil value to empty bytes so that a later read
// cannot observe a null where a value was stored.
func normalizeValue(value []byte) []byte {
	if value == nil {
		return []byte{}
	}
	return value
}
