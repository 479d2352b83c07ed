package blobstore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cached serves repeated Gets from an expiring LRU. Sets write through.
type Cached struct {
	inner Store
	cache *expirable.LRU[string, string]
}

// NewCached wraps inner. ttl <= 0 disables expiry.
func NewCached(inner Store, size int, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (c *Cached) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := c.cache.Get(key); ok {
		return v, true, nil
	}

	v, ok, err := c.inner.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}
	c.cache.Add(key, v)
	return v, true, nil
}

func (c *Cached) Set(ctx context.Context, key, value string) error {
	if err := c.inner.Set(ctx, key, value); err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, value)
	return nil
}

func (c *Cached) Keys(ctx context.Context) ([]string, error) {
	return c.inner.Keys(ctx)
}

func (c *Cached) Close() error {
	c.cache.Purge()
	return c.inner.Close()
}
