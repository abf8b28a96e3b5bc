package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/cache"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[bool]()
		defer c.Close()

		_, err := c.Get(ctx, "ca_ES")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("stores false results too", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[bool]()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "xx", false, time.Minute))
		v, err := c.Get(ctx, "xx")
		require.NoError(t, err)
		require.False(t, v)
	})

	t.Run("expired entries are not returned", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string](cache.WithCleanupInterval(0))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "k")
		require.ErrorIs(t, err, cache.ErrNotFound)
		require.Equal(t, 0, c.Len())
	})

	t.Run("negative ttl never expires", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int](cache.WithDefaultTTL(time.Millisecond), cache.WithCleanupInterval(0))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", 7, -1))
		time.Sleep(5 * time.Millisecond)

		v, err := c.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, 7, v)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int](cache.WithMaxEntries(2))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
		require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
		_, err := c.Get(ctx, "a")
		require.NoError(t, err)
		require.NoError(t, c.Set(ctx, "c", 3, time.Minute))

		_, err = c.Get(ctx, "b")
		require.ErrorIs(t, err, cache.ErrNotFound)
		_, err = c.Get(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())
	})

	t.Run("delete and clear", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int]()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "a", 1, 0))
		require.NoError(t, c.Set(ctx, "b", 2, 0))
		require.NoError(t, c.Delete(ctx, "a"))
		require.Equal(t, 1, c.Len())
		require.NoError(t, c.Clear(ctx))
		require.Equal(t, 0, c.Len())
	})

	t.Run("closed cache rejects writes", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int]()
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
		require.ErrorIs(t, c.Set(ctx, "a", 1, 0), cache.ErrClosed)
	})
}

func TestGetOrSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("computes once and caches", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[bool]()
		defer c.Close()

		var calls atomic.Int32
		fn := func(context.Context) (bool, time.Duration, error) {
			calls.Add(1)
			return true, time.Minute, nil
		}

		for range 3 {
			v, err := cache.GetOrSet(ctx, c, "getorset-once", fn)
			require.NoError(t, err)
			require.True(t, v)
		}
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("deduplicates concurrent misses", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[bool]()
		defer c.Close()

		var calls atomic.Int32
		release := make(chan struct{})
		fn := func(context.Context) (bool, time.Duration, error) {
			calls.Add(1)
			<-release
			return true, time.Minute, nil
		}

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = cache.GetOrSet(ctx, c, "getorset-concurrent", fn)
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		require.LessOrEqual(t, calls.Load(), int32(2))
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[bool]()
		defer c.Close()

		boom := errors.New("backend down")
		_, err := cache.GetOrSet(ctx, c, "getorset-error", func(context.Context) (bool, time.Duration, error) {
			return false, 0, boom
		})
		require.ErrorIs(t, err, boom)

		_, err = c.Get(ctx, "getorset-error")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})
}
