package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/localize/pkg/cache"
	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/cookie"
	"github.com/dmitrymomot/localize/pkg/country"
	"github.com/dmitrymomot/localize/pkg/db"
	"github.com/dmitrymomot/localize/pkg/health"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/locale"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/redis"
	"github.com/dmitrymomot/localize/pkg/session"
	"github.com/dmitrymomot/localize/pkg/storage"
)

var (
	ErrUnknownCatalogSource = errors.New("server: unknown catalog source")
	ErrStorageRequired      = errors.New("server: s3 catalog source requires storage settings")
)

// App holds the wired localization services of the demo server.
type App struct {
	cfg Config
	log *slog.Logger

	Registry  *locale.Registry
	Resolver  *i18n.Resolver
	Catalogs  *catalog.Catalogs
	Countries *country.Store
	Cookies   *cookie.Manager
	Sessions  *session.Manager
	Methods   []i18n.Method
	Checks    health.Checks

	closers []func(context.Context) error
}

// Setup connects the optional backends and builds the services. Redis,
// PostgreSQL and S3 are used only when configured; the in-memory cache and
// session store cover the rest. On error everything opened so far is
// closed.
func Setup(ctx context.Context, cfg Config, log *slog.Logger) (_ *App, err error) {
	if log == nil {
		log = logger.NewNope()
	}
	a := &App{cfg: cfg, log: log, Checks: health.Checks{}}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	if a.Countries, err = loadCountries(cfg.CountriesFile); err != nil {
		return nil, err
	}
	if a.Methods, err = i18n.ParseMethods(cfg.LocaleMethods); err != nil {
		return nil, err
	}
	fallback, err := locale.Parse(cfg.FallbackLocale)
	if err != nil {
		return nil, fmt.Errorf("fallback locale: %w", err)
	}

	rdb, err := a.connectRedis(ctx)
	if err != nil {
		return nil, err
	}
	backend, err := a.catalogBackend(ctx)
	if err != nil {
		return nil, err
	}

	var lookups cache.Cache[bool]
	if rdb != nil {
		lookups = cache.NewRedis[bool](rdb, cache.WithPrefix("localize:catalog:"))
	} else {
		mem := cache.NewMemory[bool](cache.WithMaxEntries(1024))
		a.closers = append(a.closers, func(context.Context) error { return mem.Close() })
		lookups = mem
	}

	a.Registry, err = locale.NewRegistry(backend,
		locale.WithDomain(cfg.TextDomain),
		locale.WithCache(lookups, cfg.RegistryCacheTTL),
		locale.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	a.Resolver = i18n.NewResolver(a.Registry,
		i18n.WithFallbackLocale(fallback),
		i18n.WithFallbackCountry(cfg.FallbackCountry),
		i18n.WithCountry(cfg.Country),
		i18n.WithLogger(log),
	)

	a.Catalogs = catalog.New(cfg.LocalePath, cfg.TextDomain)
	if len(cfg.Preload) > 0 {
		a.Catalogs.Preload(cfg.Preload...)
	}

	store, err := a.sessionStore(ctx, rdb)
	if err != nil {
		return nil, err
	}
	a.Sessions = session.NewManager(store, session.WithSecureCookie(cfg.SecureCookies))

	cookieOpts := []cookie.Option{cookie.WithSecure(cfg.SecureCookies)}
	if cfg.CookieSecret != "" {
		cookieOpts = append(cookieOpts, cookie.WithSecret(cfg.CookieSecret))
	}
	a.Cookies = cookie.New(cookieOpts...)
	if cfg.CookieSecret != "" && !a.Cookies.Signed() {
		log.Warn("cookie secret shorter than 32 bytes, locale cookie is not signed")
	}

	if cfg.CatalogSource != SourceS3 {
		a.Checks["catalogs"] = health.DirCheck(cfg.LocalePath)
	}
	return a, nil
}

// Close runs the registered closers in reverse order.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func loadCountries(file string) (*country.Store, error) {
	if file == "" {
		return country.Default(), nil
	}
	s, err := country.LoadFile(os.DirFS(filepath.Dir(file)), filepath.Base(file))
	if err != nil {
		return nil, fmt.Errorf("countries %s: %w", file, err)
	}
	return s, nil
}

func (a *App) connectRedis(ctx context.Context) (goredis.UniversalClient, error) {
	if !a.cfg.Redis.Enabled() {
		return nil, nil
	}
	client, err := redis.Connect(ctx, a.cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })
	a.Checks["redis"] = redis.Healthcheck(client)
	return client, nil
}

// catalogBackend mirrors the bucket into LocalePath when storage is
// configured, then answers existence checks from the directory or, with
// CATALOG_SOURCE=s3, from the bucket itself.
func (a *App) catalogBackend(ctx context.Context) (locale.Backend, error) {
	source := strings.ToLower(strings.TrimSpace(a.cfg.CatalogSource))
	switch source {
	case "", SourceDir, SourceS3:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalogSource, a.cfg.CatalogSource)
	}

	if !a.cfg.Storage.Enabled() {
		if source == SourceS3 {
			return nil, ErrStorageRequired
		}
		return locale.NewDirBackend(a.cfg.LocalePath), nil
	}

	s3, err := storage.New(a.cfg.Storage)
	if err != nil {
		return nil, err
	}
	n, err := s3.Sync(ctx, a.cfg.LocalePath, a.cfg.TextDomain)
	if err != nil {
		return nil, fmt.Errorf("sync catalogs: %w", err)
	}
	a.log.InfoContext(ctx, "catalogs synced", slog.Int("count", n), slog.String("path", a.cfg.LocalePath))

	if source == SourceS3 {
		return s3, nil
	}
	return locale.NewDirBackend(a.cfg.LocalePath), nil
}

func (a *App) sessionStore(ctx context.Context, rdb goredis.UniversalClient) (session.Store, error) {
	if a.cfg.Database.Enabled() {
		pool, err := db.Connect(ctx, a.cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { pool.Close(); return nil })
		a.Checks["database"] = db.Healthcheck(pool)

		if err := db.Migrate(ctx, pool, a.cfg.Database.MigrationsTable, a.log); err != nil {
			return nil, err
		}
		return session.NewPostgresStore(pool), nil
	}
	if rdb != nil {
		return session.NewRedisStore(rdb, "localize:session:"), nil
	}
	return session.NewMemoryStore(), nil
}
