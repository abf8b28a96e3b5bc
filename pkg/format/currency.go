package format

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/localize/pkg/country"
)

// Currency defaults used when neither an option nor the country sets a field.
const (
	DefaultPrecision = 2
	DefaultUnit      = "$"
	DefaultSeparator = "."
	DefaultDelimiter = ","
)

// DefaultCurrencyOrder places the unit before the number.
var DefaultCurrencyOrder = []string{country.Unit, country.Number}

// CurrencyOption overrides one field of the country currency layout.
type CurrencyOption func(*currencyLayout)

type currencyLayout struct {
	precision *int
	unit      *string
	separator *string
	delimiter *string
	order     []string
}

func WithPrecision(n int) CurrencyOption {
	return func(c *currencyLayout) { c.precision = &n }
}

func WithUnit(unit string) CurrencyOption {
	return func(c *currencyLayout) { c.unit = &unit }
}

// WithSeparator sets the decimal separator.
func WithSeparator(sep string) CurrencyOption {
	return func(c *currencyLayout) { c.separator = &sep }
}

// WithDelimiter sets the thousands delimiter.
func WithDelimiter(delim string) CurrencyOption {
	return func(c *currencyLayout) { c.delimiter = &delim }
}

// WithOrder sets the unit/number order, e.g. WithOrder("number", "unit").
func WithOrder(order ...string) CurrencyOption {
	return func(c *currencyLayout) { c.order = order }
}

type resolvedCurrency struct {
	precision int
	unit      string
	separator string
	delimiter string
	order     []string
}

// resolveCurrency picks each field from the options, then the country, then
// the package defaults.
func resolveCurrency(cfg country.Currency, opts []CurrencyOption) resolvedCurrency {
	var o currencyLayout
	for _, opt := range opts {
		opt(&o)
	}

	r := resolvedCurrency{
		precision: pick(o.precision, cfg.Precision, DefaultPrecision),
		unit:      pick(o.unit, cfg.Unit, DefaultUnit),
		separator: pick(o.separator, cfg.Separator, DefaultSeparator),
		delimiter: pick(o.delimiter, cfg.Delimiter, DefaultDelimiter),
		order:     DefaultCurrencyOrder,
	}
	switch {
	case o.order != nil:
		r.order = o.order
	case cfg.Order != nil:
		r.order = cfg.Order
	}

	if r.precision < 0 {
		r.precision = 0
	}
	if r.precision == 0 {
		r.separator = ""
	}
	return r
}

func pick[T any](opt, cfg *T, def T) T {
	if opt != nil {
		return *opt
	}
	if cfg != nil {
		return *cfg
	}
	return def
}

// Currency formats amount using the currency layout of a country.
// Options take precedence over cfg, and cfg over the package defaults.
//
// With the Spanish layout 1234567.8945 becomes "1.234.567,89 €". Amounts
// that are not numbers, NaN or infinite are returned unformatted.
func Currency(amount any, cfg country.Currency, opts ...CurrencyOption) string {
	v, ok := toFloat(amount)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(amount)
	}

	c := resolveCurrency(cfg, opts)
	unit := c.unit
	if slices.Equal(c.order, []string{country.Number, country.Unit}) {
		unit = " " + unit
	}

	var b strings.Builder
	for _, part := range c.order {
		switch part {
		case country.Unit:
			b.WriteString(unit)
		case country.Number:
			b.WriteString(Number(v, c.precision, c.separator, c.delimiter))
		}
	}
	return b.String()
}

// Number rounds v to precision decimals and groups the integer part by
// delimiter every three digits.
func Number(v float64, precision int, separator, delimiter string) string {
	s := strconv.FormatFloat(v, 'f', max(precision, 0), 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + group(intPart, delimiter) + separator + frac
}

func group(digits, delimiter string) string {
	if len(digits) <= 3 || delimiter == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func toFloat(amount any) (float64, bool) {
	switch v := amount.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		return parseFloat(v)
	case fmt.Stringer:
		return parseFloat(v.String())
	default:
		return 0, false
	}
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}
