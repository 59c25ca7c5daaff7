package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get on empty cache = ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("tikz output"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if string(data) != "tikz output" {
		t.Fatalf("Get returned %q", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("Get after Delete must miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete of absent key must be a no-op, got %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("expired entry must miss")
	}
}

func TestNullCacheNeverStores(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("null cache must always miss")
	}
}

func TestDefaultKeyerIsStable(t *testing.T) {
	k := NewDefaultKeyer()
	opts := RenderKeyOpts{Width: 10, Height: 10, Epsilon: 1e-4}

	a := k.RenderKey("abc", opts)
	b := k.RenderKey("abc", opts)
	if a != b {
		t.Fatal("identical inputs must produce identical keys")
	}
	if !strings.HasPrefix(a, "render:") {
		t.Fatalf("render key %q missing prefix", a)
	}

	opts.Width = 20
	if k.RenderKey("abc", opts) == a {
		t.Fatal("changed options must change the key")
	}
	if k.RenderKey("def", RenderKeyOpts{Width: 10, Height: 10, Epsilon: 1e-4}) == a {
		t.Fatal("changed scene hash must change the key")
	}
}

func TestScopedKeyerPrefixes(t *testing.T) {
	k := NewScopedKeyer(nil, "tenant:42:")
	key := k.SceneKey("demo")
	if !strings.HasPrefix(key, "tenant:42:scene:") {
		t.Fatalf("scoped key = %q", key)
	}
}

func TestRetryWithBackoffStopsOnPermanentError(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return context.Canceled
	})
	if err == nil || calls != 1 {
		t.Fatalf("permanent error retried %d times, err=%v", calls, err)
	}
}
