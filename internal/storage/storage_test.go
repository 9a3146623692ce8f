package storage

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()

	kv, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	value, ok, err := kv.Get("portfolios")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Errorf("expected missing key, got value %q", value)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("portfolios", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := kv.Get("portfolios")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("key missing after Set")
	}
	if value != `[{"id":"1"}]` {
		t.Errorf("value = %q, want %q", value, `[{"id":"1"}]`)
	}
}

func TestSetOverwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("portfolios", "old"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("portfolios", "new"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	value, ok, err := kv.Get("portfolios")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if value != "new" {
		t.Errorf("value = %q, want %q", value, "new")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("portfolios", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Delete("portfolios"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := kv.Delete("portfolios"); err != nil {
		t.Fatalf("Delete of absent key failed: %v", err)
	}

	_, ok, err := kv.Get("portfolios")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("key still present after Delete")
	}
}
