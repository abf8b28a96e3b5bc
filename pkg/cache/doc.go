// Package cache memoizes locale registry lookups.
//
// Two backends implement [Cache]: [Memory], an LRU with per-entry TTL for a
// single process, and [Redis], shared by every replica. [GetOrSet] wraps
// either with singleflight so a burst of requests for an unknown locale hits
// the catalog store once:
//
//	exists, err := cache.GetOrSet(ctx, c, "ca_ES", func(ctx context.Context) (bool, time.Duration, error) {
//		ok, err := backend.Exists(ctx, "ca_ES/LC_MESSAGES/app.mo")
//		return ok, 5 * time.Minute, err
//	})
package cache
