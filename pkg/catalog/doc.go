// Package catalog translates messages through compiled gettext (.mo)
// catalogs, read with github.com/snapcore/go-gettext.
//
//	cats := catalog.New("locale", "app")
//	tr := cats.For(locale.MustParse("ca_ES"))
//	tr.Gettext("January") // "Gener"
//
// [Messages] is an in-memory [Translator] for tests and built-in defaults.
package catalog
