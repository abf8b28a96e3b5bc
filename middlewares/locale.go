package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dmitrymomot/localize/pkg/cookie"
	"github.com/dmitrymomot/localize/pkg/country"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// DefaultLocaleKey names the query parameter, cookie and session value
// holding an explicit locale choice.
const DefaultLocaleKey = "lang"

// DefaultLocaleMethods is the source order used when none is configured.
var DefaultLocaleMethods = []i18n.Method{i18n.MethodParam, i18n.MethodCookie, i18n.MethodSession, i18n.MethodHeader}

// LocaleConfig configures Locale.
type LocaleConfig struct {
	Methods    []i18n.Method
	Param      string
	Cookie     string
	SessionKey string
	Cookies    *cookie.Manager
	Countries  *country.Store
	Catalogs   i18n.TranslatorSource
	Logger     *slog.Logger
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleMethods sets the source priority. MethodDefault is implied
// last; listed earlier it stops resolution at that point.
func WithLocaleMethods(methods ...i18n.Method) LocaleOption {
	return func(cfg *LocaleConfig) { cfg.Methods = methods }
}

// WithLocaleParam sets the query parameter name.
func WithLocaleParam(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		if name != "" {
			cfg.Param = name
		}
	}
}

// WithLocaleCookie sets the cookie name.
func WithLocaleCookie(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		if name != "" {
			cfg.Cookie = name
		}
	}
}

// WithLocaleSessionKey sets the session value key.
func WithLocaleSessionKey(key string) LocaleOption {
	return func(cfg *LocaleConfig) {
		if key != "" {
			cfg.SessionKey = key
		}
	}
}

func WithCookieManager(m *cookie.Manager) LocaleOption {
	return func(cfg *LocaleConfig) { cfg.Cookies = m }
}

func WithCountries(s *country.Store) LocaleOption {
	return func(cfg *LocaleConfig) { cfg.Countries = s }
}

func WithCatalogs(c i18n.TranslatorSource) LocaleOption {
	return func(cfg *LocaleConfig) { cfg.Catalogs = c }
}

func WithLocaleLogger(l *slog.Logger) LocaleOption {
	return func(cfg *LocaleConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// Locale resolves the request locale and stores an *i18n.Localizer in the
// request context. The response carries the final locale in
// Content-Language, so a handler switching locale is reflected there, and
// varies on the header and cookie sources.
func Locale(resolver *i18n.Resolver, opts ...LocaleOption) Middleware {
	cfg := &LocaleConfig{
		Methods:    DefaultLocaleMethods,
		Param:      DefaultLocaleKey,
		Cookie:     DefaultLocaleKey,
		SessionKey: DefaultLocaleKey,
		Cookies:    cookie.New(),
		Logger:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	table := cfg.sourceTable()
	for _, m := range cfg.Methods {
		if _, ok := table[m]; !ok && m != i18n.MethodDefault {
			cfg.Logger.Warn("locale method has no request source", slog.String("method", m.String()))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sources := make([]i18n.Source, 0, len(cfg.Methods))
			for _, m := range cfg.Methods {
				if m == i18n.MethodDefault {
					sources = append(sources, i18n.Source{Method: i18n.MethodDefault})
					break
				}
				if build, ok := table[m]; ok {
					sources = append(sources, build(r))
				}
			}

			rc := resolver.Resolve(r.Context(), sources...)
			l := i18n.NewLocalizer(rc, cfg.Countries, cfg.Catalogs)

			rw := WrapResponseWriter(w)
			setHeaders := sync.OnceFunc(func() {
				rw.Header().Set("Content-Language", rc.Locale().Tag().String())
				rw.Header().Add("Vary", "Accept-Language")
				rw.Header().Add("Vary", "Cookie")
			})
			rw.OnBeforeWrite(setHeaders)

			next.ServeHTTP(rw, r.WithContext(i18n.WithLocalizer(r.Context(), l)))
			if !rw.Written() {
				setHeaders()
			}
		})
	}
}

// sourceTable maps each method to the request field it reads.
func (cfg *LocaleConfig) sourceTable() map[i18n.Method]func(*http.Request) i18n.Source {
	return map[i18n.Method]func(*http.Request) i18n.Source{
		i18n.MethodHeader: func(r *http.Request) i18n.Source {
			return i18n.RawSource(i18n.MethodHeader, func(context.Context) string {
				return r.Header.Get("Accept-Language")
			})
		},
		i18n.MethodCookie: func(r *http.Request) i18n.Source {
			return i18n.RawSource(i18n.MethodCookie, func(context.Context) string {
				get := cfg.Cookies.Get
				if cfg.Cookies.Signed() {
					get = cfg.Cookies.GetSigned
				}
				v, _ := get(r, cfg.Cookie)
				return v
			})
		},
		i18n.MethodSession: func(*http.Request) i18n.Source {
			return i18n.RawSource(i18n.MethodSession, func(ctx context.Context) string {
				s := sessionFrom(ctx)
				if s == nil {
					return ""
				}
				v, _ := s.String(cfg.SessionKey)
				return v
			})
		},
		i18n.MethodParam: func(r *http.Request) i18n.Source {
			return i18n.RawSource(i18n.MethodParam, func(context.Context) string {
				return r.URL.Query().Get(cfg.Param)
			})
		},
	}
}

// GetLocalizer returns the localizer stored by Locale, or nil.
func GetLocalizer(r *http.Request) *i18n.Localizer {
	return i18n.FromContext(r.Context())
}
