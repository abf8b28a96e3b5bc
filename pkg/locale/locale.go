package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a language with an optional country, written "ca_ES" or "en".
// The zero value is not a valid locale.
type Locale struct {
	lang    string
	country string
}

// Parse accepts "ca", "ca_ES", "ca-es" and "es-ES". Language is normalized
// to lowercase and country to uppercase. Both parts are validated against
// the ISO tables in golang.org/x/text/language.
func Parse(s string) (Locale, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Locale{}, fmt.Errorf("%w: empty", ErrInvalidLocale)
	}

	langPart, countryPart, hasCountry := strings.Cut(strings.ReplaceAll(raw, "-", "_"), "_")
	if _, err := language.ParseBase(langPart); err != nil {
		return Locale{}, fmt.Errorf("%w: %q", ErrInvalidLocale, s)
	}

	l := Locale{lang: strings.ToLower(langPart)}
	if hasCountry {
		if _, err := language.ParseRegion(countryPart); err != nil {
			return Locale{}, fmt.Errorf("%w: %q", ErrInvalidLocale, s)
		}
		l.country = strings.ToUpper(countryPart)
	}
	return l, nil
}

// MustParse is Parse for constants; it panics on error.
func MustParse(s string) Locale {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Language returns the lowercase language code.
func (l Locale) Language() string { return l.lang }

// Country returns the uppercase country code, or "" when absent.
func (l Locale) Country() string { return l.country }

// HasCountry reports whether a country segment was given.
func (l Locale) HasCountry() bool { return l.country != "" }

// IsZero reports whether l is the zero value.
func (l Locale) IsZero() bool { return l.lang == "" }

// String renders the gettext directory form, "ca_ES" or "ca".
func (l Locale) String() string {
	if l.country == "" {
		return l.lang
	}
	return l.lang + "_" + l.country
}

// Base drops the country segment.
func (l Locale) Base() Locale { return Locale{lang: l.lang} }

// Tag converts to a BCP 47 tag.
func (l Locale) Tag() language.Tag {
	if l.country == "" {
		return language.Make(l.lang)
	}
	return language.Make(l.lang + "-" + l.country)
}
