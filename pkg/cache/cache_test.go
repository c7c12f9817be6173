package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before Set
	if _, hit, _ := c.Get(ctx, "layout:abc"); hit {
		t.Error("unexpected hit before Set")
	}

	// Set then Get
	if err := c.Set(ctx, "layout:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:abc")
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if string(data) != "payload" {
		t.Errorf("Get = %q, want payload", data)
	}

	// Expired entries are treated as misses
	if err := c.Set(ctx, "layout:old", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:old"); hit {
		t.Error("expired entry should be a miss")
	}

	// Delete
	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:abc"); hit {
		t.Error("hit after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "layout:missing"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.LayoutKey("hash1", LayoutKeyOpts{MaxDataCells: 100})
	b := k.LayoutKey("hash1", LayoutKeyOpts{MaxDataCells: 100})
	if a != b {
		t.Error("same inputs should produce the same key")
	}

	// Different axes hash or options produce different keys
	if k.LayoutKey("hash2", LayoutKeyOpts{MaxDataCells: 100}) == a {
		t.Error("different axes hash should change the key")
	}
	if k.LayoutKey("hash1", LayoutKeyOpts{MaxDataCells: 200}) == a {
		t.Error("different options should change the key")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "ws:abc:")

	key := scoped.LayoutKey("hash", LayoutKeyOpts{})
	want := "ws:abc:" + inner.LayoutKey("hash", LayoutKeyOpts{})
	if key != want {
		t.Errorf("scoped key = %q, want %q", key, want)
	}
}
