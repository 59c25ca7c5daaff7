package cache

import (
	"context"
	"time"

	"github.com/matzehuels/sketch3d/pkg/observability"
)

// instrumented wraps a Cache and reports hits, misses, and writes to the
// registered cache hooks.
type instrumented struct {
	inner   Cache
	keyType string
}

// Instrument wraps c so its operations emit observability events tagged
// with keyType ("render" or "scene").
func Instrument(c Cache, keyType string) Cache {
	return &instrumented{inner: c, keyType: keyType}
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.inner.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(c.keyType)
		} else {
			observability.Cache().OnCacheMiss(c.keyType)
		}
	}
	return data, ok, err
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.inner.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(c.keyType, len(data))
	}
	return err
}

func (c *instrumented) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

func (c *instrumented) Close() error {
	return c.inner.Close()
}

var _ Cache = (*instrumented)(nil)
