package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache stores lookup results (e.g. "does catalog ca_ES/LC_MESSAGES/app.mo
// exist") so hot paths skip the backing store.
//
// TTL passed to Set: positive expires after the duration, zero uses the
// cache default, negative never expires.
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

var group singleflight.Group

type computed[V any] struct {
	val V
	ttl time.Duration
}

// GetOrSet returns the cached value for key or computes it with fn.
// Concurrent misses for the same key share one fn call. Results are cached
// on a best-effort basis, errors from fn are returned and never cached.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	// in-flight calls are shared per cache instance
	res, err, _ := group.Do(fmt.Sprintf("%p|%s", c, key), func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return computed[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r := res.(computed[V])
	_ = c.Set(ctx, key, r.val, r.ttl)
	return r.val, nil
}
