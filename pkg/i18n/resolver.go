package i18n

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/localize/pkg/locale"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// Fallbacks used when nothing else resolves.
const (
	DefaultFallbackLocale  = "ca"
	DefaultFallbackCountry = "es"
)

// LocaleChecker reports whether a locale can be served.
// *locale.Registry implements it.
type LocaleChecker interface {
	HasLocale(ctx context.Context, name string) bool
}

// Resolver picks the locale of a request from an ordered list of sources.
type Resolver struct {
	checker         LocaleChecker
	fallbackLocale  locale.Locale
	fallbackCountry string
	country         string
	logger          *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFallbackLocale sets the locale used when no source matches.
func WithFallbackLocale(l locale.Locale) ResolverOption {
	return func(r *Resolver) {
		if !l.IsZero() {
			r.fallbackLocale = l
		}
	}
}

// WithFallbackCountry sets the country used when neither an explicit
// country nor the locale provides one.
func WithFallbackCountry(code string) ResolverOption {
	return func(r *Resolver) {
		if code = normalizeCountry(code); code != "" {
			r.fallbackCountry = code
		}
	}
}

// WithCountry fixes the country regardless of the resolved locale.
func WithCountry(code string) ResolverOption {
	return func(r *Resolver) {
		r.country = normalizeCountry(code)
	}
}

func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a resolver that accepts candidates approved by checker.
func NewResolver(checker LocaleChecker, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		checker:         checker,
		fallbackLocale:  locale.MustParse(DefaultFallbackLocale),
		fallbackCountry: DefaultFallbackCountry,
		logger:          logger.NewNope(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FallbackLocale returns the locale used when no source matches.
func (r *Resolver) FallbackLocale() locale.Locale { return r.fallbackLocale }

// FallbackCountry returns the country used when nothing else provides one.
func (r *Resolver) FallbackCountry() string { return r.fallbackCountry }

// Resolve tries sources in order and stops at the first candidate the
// checker accepts. A MethodDefault source ends the chain with the fallback
// locale, as does running out of sources. The result is never empty.
func (r *Resolver) Resolve(ctx context.Context, sources ...Source) *Context {
	for _, src := range sources {
		if src.Method == MethodDefault {
			break
		}
		if src.Lookup == nil {
			continue
		}
		for _, candidate := range src.Lookup(ctx) {
			l, err := locale.Parse(candidate)
			if err != nil {
				continue
			}
			if r.checker != nil && r.checker.HasLocale(ctx, candidate) {
				rc := r.newContext(l, src.Method)
				r.logger.DebugContext(ctx, "locale resolved",
					slog.String("locale", l.String()),
					slog.String("country", rc.Country()),
					slog.String("method", src.Method.String()),
				)
				return rc
			}
		}
	}
	return r.newContext(r.fallbackLocale, MethodDefault)
}

// CountryFor returns the country that goes with l: the explicit country
// when configured, else the locale's country, else the fallback.
func (r *Resolver) CountryFor(l locale.Locale) string {
	switch {
	case r.country != "":
		return r.country
	case l.HasCountry():
		return normalizeCountry(l.Country())
	default:
		return r.fallbackCountry
	}
}

func (r *Resolver) newContext(l locale.Locale, m Method) *Context {
	return &Context{locale: l, country: r.CountryFor(l), method: m}
}

func normalizeCountry(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
