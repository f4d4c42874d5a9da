package caches

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// testCacheContract exercises the behavior every backend must provide:
// round trips, the not-found sentinel, nil normalization, overwrite
// semantics and autonomous expiry.
func testCacheContract(t *testing.T, c Cache) {
	t.Helper()

	t.Run("set_and_get_round_trip", func(t *testing.T) {
		tests := []struct {
			key   string
			value []byte
		}{
			{key: "contract:user:123", value: []byte(`{"name": "John Doe"}`)},
			{key: "contract:binary", value: []byte{0x00, 0xff, 0x10}},
			{key: "contract:empty", value: []byte{}},
		}

		for _, tt := range tests {
			t.Run(tt.key, func(t *testing.T) {
				if err := c.SetValue(tt.key, tt.value, time.Minute); err != nil {
					t.Fatalf("SetValue: %v", err)
				}

				value, err := c.GetValue(tt.key)
				if err != nil {
					t.Fatalf("GetValue: %v", err)
				}
				if !bytes.Equal(value, tt.value) {
					t.Errorf("got %q expected %q", value, tt.value)
				}
			})
		}
	})

	t.Run("nil_value_stored_as_empty_bytes", func(t *testing.T) {
		if err := c.SetValue("contract:nil", nil, time.Minute); err != nil {
			t.Fatalf("SetValue: %v", err)
		}

		value, err := c.GetValue("contract:nil")
		if err != nil {
			t.Fatalf("GetValue: %v", err)
		}
		if value == nil {
			t.Error("got nil, expected empty bytes")
		}
		if len(value) != 0 {
			t.Errorf("got %q, expected empty bytes", value)
		}
	})

	t.Run("missing_key_returns_not_found", func(t *testing.T) {
		_, err := c.GetValue("contract:nonexistent")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, expected ErrNotFound", err)
		}
	})

	t.Run("last_write_wins", func(t *testing.T) {
		if err := c.SetValue("contract:counter", []byte("1"), time.Minute); err != nil {
			t.Fatalf("SetValue: %v", err)
		}
		if err := c.SetValue("contract:counter", []byte("2"), time.Minute); err != nil {
			t.Fatalf("SetValue: %v", err)
		}

		value, err := c.GetValue("contract:counter")
		if err != nil {
			t.Fatalf("GetValue: %v", err)
		}
		if string(value) != "2" {
			t.Errorf("got %q expected %q", value, "2")
		}
	})

	t.Run("entry_expires_after_ttl", func(t *testing.T) {
		if err := c.SetValue("contract:short_lived", []byte("soon gone"), 150*time.Millisecond); err != nil {
			t.Fatalf("SetValue: %v", err)
		}

		if _, err := c.GetValue("contract:short_lived"); err != nil {
			t.Fatalf("GetValue before expiry: %v", err)
		}

		time.Sleep(300 * time.Millisecond)

		_, err := c.GetValue("contract:short_lived")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v after expiry, expected ErrNotFound", err)
		}
	})

	t.Run("read_does_not_extend_ttl", func(t *testing.T) {
		if err := c.SetValue("contract:fixed_deadline", []byte("steady"), 300*time.Millisecond); err != nil {
			t.Fatalf("SetValue: %v", err)
		}

		time.Sleep(150 * time.Millisecond)

		if _, err := c.GetValue("contract:fixed_deadline"); err != nil {
			t.Fatalf("GetValue mid-lifetime: %v", err)
		}

		// The read above must not push the deadline past the one set
		// at write time.
		time.Sleep(250 * time.Millisecond)

		_, err := c.GetValue("contract:fixed_deadline")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v after the write-time deadline, expected ErrNotFound", err)
		}
	})

	t.Run("delete_removes_entry", func(t *testing.T) {
		if err := c.SetValue("contract:doomed", []byte("x"), time.Minute); err != nil {
			t.Fatalf("SetValue: %v", err)
		}

		if err := c.DeleteValue("contract:doomed"); err != nil {
			t.Fatalf("DeleteValue: %v", err)
		}

		if _, err := c.GetValue("contract:doomed"); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v after delete, expected ErrNotFound", err)
		}

		if err := c.DeleteValue("contract:doomed"); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v deleting a missing key, expected ErrNotFound", err)
		}
	})
}
