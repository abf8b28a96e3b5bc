// Package middlewares provides net/http middleware for localized services.
// Every constructor returns a func(http.Handler) http.Handler, so they plug
// into chi's Use as well as plain handler chains.
//
// # Locale
//
// Locale resolves the request locale through an *i18n.Resolver and stores
// an *i18n.Localizer in the request context. Sources are tried in the
// configured order (query parameter, cookie, session, Accept-Language by
// default) and the resolver falls back to its default locale when none
// has a catalog:
//
//	r.Use(middlewares.Locale(resolver,
//		middlewares.WithLocaleMethods(i18n.MethodParam, i18n.MethodHeader),
//		middlewares.WithCountries(countries),
//		middlewares.WithCatalogs(catalogs),
//	))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		l := middlewares.GetLocalizer(r)
//		fmt.Fprint(w, l.FormatCurrency(1234.5))
//	}
//
// The response carries the final locale in Content-Language.
//
// # Session
//
// Session loads the session referenced by the request cookie so the
// session source can read the stored "lang" value, and saves it when a
// handler changed it.
//
// # Request ID, Recover, Timeout and CORS
//
// RequestID reuses an upstream X-Request-ID or generates a UUID. Pair it
// with RequestIDExtractor so log records carry request_id:
//
//	log := logger.New(middlewares.RequestIDExtractor(), i18n.LogExtractor())
//
// Recover turns panics into a *PanicError and Timeout reports a
// *TimeoutError; both go to an ErrorHandler, DefaultErrorHandler unless
// configured. CORS answers preflight requests and exposes Content-Language.
package middlewares
