// Package i18n resolves the locale of a request and exposes locale-aware
// formatting through a [Localizer].
//
// A [Resolver] walks an ordered list of [Source] values (header, cookie,
// session, query parameter) and accepts the first candidate for which a
// catalog exists. Language lists are split with [ParseCandidates], which
// honours quality weights:
//
//	ParseCandidates("es-es,es;q=0.8,en;q=0.5") // [es-es es en]
//
// When nothing matches, the fallback locale ("ca") and country ("es") are
// used, so the resulting [Context] always holds a locale.
//
//	r := i18n.NewResolver(registry, i18n.WithFallbackLocale(locale.MustParse("en")))
//	rc := r.Resolve(ctx,
//		i18n.RawSource(i18n.MethodParam, func(context.Context) string { return q.Get("lang") }),
//		i18n.RawSource(i18n.MethodHeader, func(context.Context) string { return h.Get("Accept-Language") }),
//	)
//	l := i18n.NewLocalizer(rc, country.Default(), catalogs)
//	l.FormatCurrency(1234.5) // "1.234,50 €" for Spain
//	l.ToSentence([]string{"a", "b", "c"}) // "a, b, i c" in Catalan
//
// The localizer travels in the request context: see [WithLocalizer],
// [FromContext] and [LogExtractor].
package i18n
