// Package locale parses "language[_COUNTRY]" identifiers and answers which
// of them have a gettext catalog.
//
// A [Registry] looks for {locale}/LC_MESSAGES/{domain}.mo in a [Backend]:
// a local directory, any fs.FS, or an S3 bucket (pkg/storage). Lookups can
// be memoized with a pkg/cache Cache. A lookup never fails loudly: a
// missing directory, an I/O error or a malformed name all mean "not
// available".
//
//	reg, err := locale.NewRegistry(locale.NewDirBackend("locale"),
//		locale.WithDomain("app"),
//		locale.WithCache(cache.NewMemory[bool](), 5*time.Minute),
//	)
//	if reg.HasLocale(ctx, "ca_ES") {
//		// ...
//	}
package locale
