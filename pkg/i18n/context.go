package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/localize/pkg/locale"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// Context is the locale state of one request. It is not safe for
// concurrent use.
type Context struct {
	locale  locale.Locale
	country string
	method  Method
}

// NewContext creates a resolution context. An empty country is kept empty.
func NewContext(l locale.Locale, country string, m Method) *Context {
	return &Context{locale: l, country: normalizeCountry(country), method: m}
}

func (c *Context) Locale() locale.Locale { return c.locale }

// Country returns the lowercase country code.
func (c *Context) Country() string { return c.country }

// Method returns how the locale was obtained.
func (c *Context) Method() Method { return c.method }

// SetLocale switches the locale for the rest of the request. The zero
// locale is ignored.
func (c *Context) SetLocale(l locale.Locale) {
	if !l.IsZero() {
		c.locale = l
	}
}

// SetCountry switches the country for the rest of the request.
func (c *Context) SetCountry(code string) {
	if code = normalizeCountry(code); code != "" {
		c.country = code
	}
}

type localizerKey struct{}

// WithLocalizer stores l in ctx.
func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, localizerKey{}, l)
}

// FromContext returns the localizer stored by WithLocalizer, or nil.
func FromContext(ctx context.Context) *Localizer {
	l, _ := ctx.Value(localizerKey{}).(*Localizer)
	return l
}

// LogExtractor adds the request locale to log records.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		l := FromContext(ctx)
		if l == nil {
			return slog.Attr{}, false
		}
		return slog.String("locale", l.Locale().String()), true
	}
}
