package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localize/middlewares"
	"github.com/dmitrymomot/localize/pkg/health"
)

// Handler builds the HTTP routes. Health probes skip session and locale
// resolution.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middlewares.Recover(middlewares.WithRecoverLogger(a.log)),
		middlewares.RequestID(),
		middlewares.CORS(middlewares.WithAllowOrigins(a.cfg.AllowOrigins...)),
	)

	live := health.LivenessHandler()
	ready := health.ReadinessHandler(a.Checks, health.WithLogger(a.log))
	r.Get("/health/live", live)
	r.Head("/health/live", live)
	r.Get("/health/ready", ready)
	r.Head("/health/ready", ready)

	r.Group(func(r chi.Router) {
		if a.cfg.RequestTimeout > 0 {
			r.Use(middlewares.Timeout(a.cfg.RequestTimeout, middlewares.WithTimeoutLogger(a.log)))
		}
		r.Use(
			middlewares.Session(a.Sessions, a.log),
			middlewares.Locale(a.Resolver,
				middlewares.WithLocaleMethods(a.Methods...),
				middlewares.WithLocaleParam(a.localeParam()),
				middlewares.WithLocaleCookie(a.localeParam()),
				middlewares.WithLocaleSessionKey(a.localeParam()),
				middlewares.WithCookieManager(a.Cookies),
				middlewares.WithCountries(a.Countries),
				middlewares.WithCatalogs(a.Catalogs),
				middlewares.WithLocaleLogger(a.log),
			),
		)

		r.Get("/", a.handleIndex)
		r.Get("/currency", a.handleCurrency)
		r.Get("/sentence", a.handleSentence)
		r.Get("/date", a.handleDate)
		r.Get("/locales", a.handleLocales)
		r.Post("/locale", a.handleSetLocale)
	})

	return r
}
