package i18n

import (
	"time"

	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/country"
	"github.com/dmitrymomot/localize/pkg/format"
	"github.com/dmitrymomot/localize/pkg/locale"
)

// TranslatorSource returns the translator of a locale.
// *catalog.Catalogs implements it.
type TranslatorSource interface {
	For(l locale.Locale) catalog.Translator
}

// Localizer formats and translates for one request. Output follows the
// current locale and country of its Context, so SetLocale and SetCountry
// take effect on the next call.
type Localizer struct {
	rc        *Context
	countries *country.Store
	catalogs  TranslatorSource
}

// NewLocalizer binds a resolution context to a country table and catalogs.
// A nil store uses country.Default(); nil catalogs leave messages
// untranslated.
func NewLocalizer(rc *Context, countries *country.Store, catalogs TranslatorSource) *Localizer {
	if countries == nil {
		countries = country.Default()
	}
	return &Localizer{rc: rc, countries: countries, catalogs: catalogs}
}

// Context returns the resolution context.
func (l *Localizer) Context() *Context { return l.rc }

func (l *Localizer) Locale() locale.Locale { return l.rc.Locale() }

// Country returns the configuration of the current country.
func (l *Localizer) Country() country.Config { return l.countries.Get(l.rc.Country()) }

// Translator returns the catalog of the current locale.
func (l *Localizer) Translator() catalog.Translator {
	if l.catalogs == nil {
		return catalog.Identity
	}
	return l.catalogs.For(l.rc.Locale())
}

// T translates msgid and fills its {{name}} placeholders.
func (l *Localizer) T(msgid string, placeholders ...M) string {
	return ReplacePlaceholders(l.Translator().Gettext(msgid), placeholders...)
}

// N translates a message with a plural form chosen by n. The {{count}}
// placeholder is set to n unless given explicitly.
func (l *Localizer) N(msgid, msgidPlural string, n int, placeholders ...M) string {
	s := l.Translator().NGettext(msgid, msgidPlural, n)
	return ReplacePlaceholders(s, append([]M{{"count": n}}, placeholders...)...)
}

// FormatCurrency formats amount with the current country's currency layout.
func (l *Localizer) FormatCurrency(amount any, opts ...format.CurrencyOption) string {
	return format.Currency(amount, l.Country().Currency, opts...)
}

// ToSentence joins items with the country's connector word, translated
// into the current locale.
func (l *Localizer) ToSentence(items []string, opts ...format.SentenceOption) string {
	connector := l.Country().ToSentenceConnector
	if connector == "" {
		connector = format.DefaultConnector
	}
	opts = append([]format.SentenceOption{format.WithConnector(l.Translator().Gettext(connector))}, opts...)
	return format.ToSentence(items, opts...)
}

// SelectDate builds date fields in the country's field order.
func (l *Localizer) SelectDate(t *time.Time, opts ...format.DateOption) []format.Field {
	return format.SelectDate(t, l.Country().DateSelectOrder.Order, l.Translator(), opts...)
}

// SelectDatetime builds date and time fields in the country's field order.
func (l *Localizer) SelectDatetime(t *time.Time, opts ...format.DateOption) []format.Field {
	return format.SelectDatetime(t, l.Country().DateSelectOrder.Order, l.Translator(), opts...)
}

// DatetimeSelect builds the fields of object[method] with the country's
// order and discard flags.
func (l *Localizer) DatetimeSelect(object, method string, t *time.Time, opts ...format.DateOption) []format.Field {
	return format.DatetimeSelect(object, method, t, l.Country().DateSelectOrder, l.Translator(), opts...)
}
