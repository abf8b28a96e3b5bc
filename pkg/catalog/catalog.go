package catalog

import (
	"math"

	"github.com/snapcore/go-gettext"

	"github.com/dmitrymomot/localize/pkg/locale"
)

// Translator translates messages for one locale.
type Translator interface {
	Gettext(msgid string) string
	NGettext(msgid, msgidPlural string, n int) string
}

// Catalogs reads compiled gettext catalogs laid out as
// {root}/{locale}/LC_MESSAGES/{domain}.mo. Parsed catalogs are cached for
// the life of the value.
type Catalogs struct {
	translations gettext.Translations
	root         string
	domain       string
}

// New creates a catalog reader. Nothing is read until a locale is used or
// preloaded.
func New(root, domain string) *Catalogs {
	if domain == "" {
		domain = locale.DefaultDomain
	}
	return &Catalogs{
		translations: gettext.NewTranslations(root, domain, gettext.DefaultResolver),
		root:         root,
		domain:       domain,
	}
}

// Root returns the catalog directory.
func (c *Catalogs) Root() string { return c.root }

// Domain returns the text domain.
func (c *Catalogs) Domain() string { return c.domain }

// Preload parses the catalogs of the given locales up front.
func (c *Catalogs) Preload(names ...string) {
	c.translations.Preload(names...)
}

// For returns a translator for l. Lookups fall back from "ca_ES" to "ca"
// and finally to the untranslated message.
func (c *Catalogs) For(l locale.Locale) Translator {
	if l.IsZero() {
		return Identity
	}
	return moTranslator{c.translations.Locale(l.String())}
}

type moTranslator struct {
	cat gettext.Catalog
}

func (t moTranslator) Gettext(msgid string) string {
	return t.cat.Gettext(msgid)
}

func (t moTranslator) NGettext(msgid, msgidPlural string, n int) string {
	return t.cat.NGettext(msgid, msgidPlural, count(n))
}

const maxCount = int64(math.MaxUint32)

// count maps n onto the uint32 gettext expects, using |n| clamped to
// MaxUint32.
func count(n int) uint32 {
	v := max(min(int64(n), maxCount), -maxCount)
	if v < 0 {
		v = -v
	}
	return uint32(v)
}
