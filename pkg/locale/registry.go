package locale

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localize/pkg/cache"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// DefaultDomain is the gettext text domain used when none is configured.
const DefaultDomain = "app"

// Registry tracks which locales have a gettext catalog:
// {locale}/LC_MESSAGES/{domain}.mo must exist in the backend.
type Registry struct {
	backend  Backend
	domain   string
	cache    cache.Cache[bool]
	cacheTTL time.Duration
	logger   *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDomain sets the gettext text domain.
func WithDomain(domain string) RegistryOption {
	return func(r *Registry) {
		if domain != "" {
			r.domain = domain
		}
	}
}

// WithCache memoizes lookups, including misses, for ttl.
func WithCache(c cache.Cache[bool], ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		r.cache = c
		r.cacheTTL = ttl
	}
}

// WithLogger sets the logger used for backend failures.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates a registry over backend.
func NewRegistry(backend Backend, opts ...RegistryOption) (*Registry, error) {
	if backend == nil {
		return nil, ErrInvalidBackend
	}
	r := &Registry{
		backend: backend,
		domain:  DefaultDomain,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Domain returns the configured text domain.
func (r *Registry) Domain() string { return r.domain }

// HasLocale reports whether a catalog exists for name under its canonical
// directory ("es-es" is looked up as "es_ES"), the one catalogs are read
// from. Invalid names and backend failures yield false.
func (r *Registry) HasLocale(ctx context.Context, name string) bool {
	l, err := Parse(strings.TrimSpace(name))
	if err != nil {
		return false
	}
	return r.exists(ctx, l.String())
}

// Available filters candidates down to those with a catalog, keeping the
// input order. Lookups run concurrently.
func (r *Registry) Available(ctx context.Context, candidates ...string) []string {
	found := make([]bool, len(candidates))

	var g errgroup.Group
	g.SetLimit(8)
	for i, c := range candidates {
		g.Go(func() error {
			found[i] = r.HasLocale(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]string, 0, len(candidates))
	for i, c := range candidates {
		if found[i] {
			out = append(out, strings.TrimSpace(c))
		}
	}
	return out
}

// List returns every locale directory that holds a catalog for the
// domain. The backend must implement Lister.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	lister, ok := r.backend.(Lister)
	if !ok {
		return nil, ErrNotListable
	}
	names, err := lister.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.Available(ctx, names...), nil
}

// CatalogKey returns the backend key of the catalog for name.
func (r *Registry) CatalogKey(name string) string {
	return path.Join(name, "LC_MESSAGES", r.domain+".mo")
}

func (r *Registry) exists(ctx context.Context, name string) bool {
	key := r.CatalogKey(name)
	lookup := func(ctx context.Context) (bool, time.Duration, error) {
		ok, err := r.backend.Exists(ctx, key)
		return ok, r.cacheTTL, err
	}

	var (
		ok  bool
		err error
	)
	if r.cache != nil {
		ok, err = cache.GetOrSet(ctx, r.cache, key, lookup)
	} else {
		ok, _, err = lookup(ctx)
	}
	if err != nil {
		r.logger.DebugContext(ctx, "catalog lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}
	return ok
}
