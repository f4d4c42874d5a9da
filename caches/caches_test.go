package caches

import "testing"

func TestNormalizeValue(t *testing.T) {
	got := normalizeValue(nil)
	if got == nil {
		t.Error("nil input should normalize to a non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("got %q, expected empty bytes", got)
	}

	value := []byte("payload")
	if string(normalizeValue(value)) != "payload" {
		t.Error("non-nil values must pass through unchanged")
	}
}
