package caches

import (
	"testing"
	"time"
)

func TestMemoryCache_Contract(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()

	testCacheContract(t, c)
}

func TestMemoryCache_AlwaysConnected(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()

	if !c.Connected() {
		t.Error("memory cache should always report connected")
	}
}

func TestMemoryCache_OverwriteResetsTTL(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()

	if err := c.SetValue("reset", []byte("v1"), 150*time.Millisecond); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := c.SetValue("reset", []byte("v2"), time.Minute); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	time.Sleep(300 * time.Millisecond)

	value, err := c.GetValue("reset")
	if err != nil {
		t.Fatalf("GetValue after rewrite: %v", err)
	}
	if string(value) != "v2" {
		t.Errorf("got %q expected %q", value, "v2")
	}
}
