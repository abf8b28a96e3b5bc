package format

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/country"
)

// Field kinds.
const (
	KindYear   = country.Year
	KindMonth  = country.Month
	KindDay    = country.Day
	KindHour   = "hour"
	KindMinute = "minute"
)

// Separators written before the time fields of DatetimeSelect.
const (
	HourSeparator   = " &mdash; "
	MinuteSeparator = " : "
)

// DefaultPrefix names SelectDate fields: date[day], date[month], ...
const DefaultPrefix = "date"

// DefaultDateOrder is used when a country has no valid field order.
var DefaultDateOrder = []string{country.Year, country.Month, country.Day}

// positions of the multi-parameter fields built by DatetimeSelect.
var positions = map[string]int{
	KindYear:   1,
	KindMonth:  2,
	KindDay:    3,
	KindHour:   4,
	KindMinute: 5,
}

// Field is one <select> of a date or datetime picker. Separator is markup
// written before the element.
type Field struct {
	Name      string
	Kind      string
	Position  int
	Separator string
	Options   []Option
}

// Option is one <option> of a Field.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Selected returns the selected option value, or "".
func (f Field) Selected() string {
	for _, o := range f.Options {
		if o.Selected {
			return o.Value
		}
	}
	return ""
}

// DateOption configures SelectDate and SelectDatetime.
type DateOption func(*dateOptions)

type dateOptions struct {
	prefix       string
	startYear    int
	endYear      int
	includeBlank bool
	now          func() time.Time
}

// WithPrefix sets the field name prefix.
func WithPrefix(prefix string) DateOption {
	return func(o *dateOptions) { o.prefix = prefix }
}

// WithYearRange sets the first and last year offered. start may be
// greater than end for a descending list.
func WithYearRange(start, end int) DateOption {
	return func(o *dateOptions) { o.startYear, o.endYear = start, end }
}

// WithIncludeBlank adds an empty first option to every field.
func WithIncludeBlank() DateOption {
	return func(o *dateOptions) { o.includeBlank = true }
}

// WithClock sets the time source used for the default year range.
func WithClock(now func() time.Time) DateOption {
	return func(o *dateOptions) { o.now = now }
}

func newDateOptions(t *time.Time, opts []DateOption) dateOptions {
	o := dateOptions{prefix: DefaultPrefix, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.startYear == 0 && o.endYear == 0 {
		year := o.now().Year()
		if t != nil {
			year = t.Year()
		}
		o.startYear, o.endYear = year-5, year+5
	}
	return o
}

// SelectDate builds day, month and year fields named prefix[day] etc. and
// arranges them in order. A nil t selects nothing. Month labels are
// translated through tr.
func SelectDate(t *time.Time, order []string, tr catalog.Translator, opts ...DateOption) []Field {
	o := newDateOptions(t, opts)
	fields := make([]Field, 0, 3)
	for _, kind := range dateOrder(order) {
		fields = append(fields, buildField(kind, o.prefix+"["+kind+"]", t, tr, o))
	}
	return fields
}

// SelectDatetime is SelectDate followed by hour and minute fields.
func SelectDatetime(t *time.Time, order []string, tr catalog.Translator, opts ...DateOption) []Field {
	o := newDateOptions(t, opts)
	fields := SelectDate(t, order, tr, opts...)
	for _, kind := range []string{KindHour, KindMinute} {
		fields = append(fields, buildField(kind, o.prefix+"["+kind+"]", t, tr, o))
	}
	return fields
}

// DatetimeSelect builds the fields of a model attribute picker, named
// object[method(1i)] through object[method(5i)] for year to minute. The
// date fields follow cfg.Order. Discarding the month also discards the
// day, and discarding the hour also discards the minute.
func DatetimeSelect(object, method string, t *time.Time, cfg country.DateSelectOrder, tr catalog.Translator, opts ...DateOption) []Field {
	o := newDateOptions(t, opts)
	name := func(kind string) string {
		return fmt.Sprintf("%s[%s(%di)]", object, method, positions[kind])
	}

	discard := map[string]bool{
		KindYear:  cfg.DiscardYear,
		KindMonth: cfg.DiscardMonth,
		KindDay:   cfg.DiscardDay || cfg.DiscardMonth,
	}

	var fields []Field
	for _, kind := range dateOrder(cfg.Order) {
		if discard[kind] {
			continue
		}
		f := buildField(kind, name(kind), t, tr, o)
		f.Position = positions[kind]
		fields = append(fields, f)
	}

	if cfg.DiscardHour {
		return fields
	}
	hour := buildField(KindHour, name(KindHour), t, tr, o)
	hour.Position = positions[KindHour]
	hour.Separator = HourSeparator
	fields = append(fields, hour)

	if cfg.DiscardMinute {
		return fields
	}
	minute := buildField(KindMinute, name(KindMinute), t, tr, o)
	minute.Position = positions[KindMinute]
	minute.Separator = MinuteSeparator
	return append(fields, minute)
}

func dateOrder(order []string) []string {
	if len(order) != 3 {
		return DefaultDateOrder
	}
	for _, k := range DefaultDateOrder {
		if !slices.Contains(order, k) {
			return DefaultDateOrder
		}
	}
	return order
}

func buildField(kind, name string, t *time.Time, tr catalog.Translator, o dateOptions) Field {
	if tr == nil {
		tr = catalog.Identity
	}

	f := Field{Name: name, Kind: kind}
	if o.includeBlank {
		f.Options = append(f.Options, Option{})
	}

	add := func(n int, value, label string, current int) {
		f.Options = append(f.Options, Option{
			Value:    value,
			Label:    label,
			Selected: t != nil && n == current,
		})
	}

	var current int
	switch kind {
	case KindYear:
		if t != nil {
			current = t.Year()
		}
		step := 1
		if o.startYear > o.endYear {
			step = -1
		}
		for y := o.startYear; ; y += step {
			s := strconv.Itoa(y)
			add(y, s, s, current)
			if y == o.endYear {
				break
			}
		}
	case KindMonth:
		if t != nil {
			current = int(t.Month())
		}
		for m := time.January; m <= time.December; m++ {
			add(int(m), strconv.Itoa(int(m)), tr.Gettext(m.String()), current)
		}
	case KindDay:
		if t != nil {
			current = t.Day()
		}
		for d := 1; d <= 31; d++ {
			s := strconv.Itoa(d)
			add(d, s, s, current)
		}
	case KindHour:
		if t != nil {
			current = t.Hour()
		}
		for h := range 24 {
			s := fmt.Sprintf("%02d", h)
			add(h, s, s, current)
		}
	case KindMinute:
		if t != nil {
			current = t.Minute()
		}
		for m := range 60 {
			s := fmt.Sprintf("%02d", m)
			add(m, s, s, current)
		}
	}
	return f
}
