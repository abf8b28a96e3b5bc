package cache

import "time"

type options struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	maxEntries      int
	prefix          string
}

func newOptions(opts []Option) *options {
	o := &options{
		defaultTTL:      time.Hour,
		cleanupInterval: time.Minute,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures Memory and Redis caches. Options that do not apply to a
// backend are ignored by it.
type Option func(*options)

// WithDefaultTTL sets the TTL used when Set receives zero. Default: 1 hour.
func WithDefaultTTL(d time.Duration) Option {
	return func(o *options) { o.defaultTTL = d }
}

// WithCleanupInterval sets how often Memory drops expired entries.
// Zero disables the janitor. Default: 1 minute.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) { o.cleanupInterval = d }
}

// WithMaxEntries bounds Memory, evicting the least recently used entry.
// Zero means unlimited.
func WithMaxEntries(n int) Option {
	return func(o *options) { o.maxEntries = n }
}

// WithPrefix namespaces Redis keys as "{prefix}:{key}".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}
