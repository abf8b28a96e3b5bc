package format_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localize/pkg/country"
	"github.com/dmitrymomot/localize/pkg/format"
)

func TestCurrency(t *testing.T) {
	t.Parallel()

	countries := country.Default()
	es := countries.Get("es").Currency
	us := countries.Get("us").Currency

	tests := []struct {
		name   string
		amount any
		cfg    country.Currency
		opts   []format.CurrencyOption
		want   string
	}{
		{"spain", 1234567.8945, es, nil, "1.234.567,89 €"},
		{"united states", 1234567.8945, us, nil, "$1,234,567.89"},
		{"unknown country", 1234567.8945, countries.Get("zz").Currency, nil, "$1,234,567.89"},
		{"empty config uses defaults", 1234567.8945, country.Currency{}, nil, "$1,234,567.89"},
		{
			"options override country",
			1234567.8945, es,
			[]format.CurrencyOption{
				format.WithUnit("%"),
				format.WithSeparator(":"),
				format.WithDelimiter("-"),
				format.WithOrder("unit", "number"),
			},
			"%1-234-567:89",
		},
		{"zero precision drops separator", 1234567.8945, es, []format.CurrencyOption{format.WithPrecision(0)}, "1.234.568 €"},
		{"negative precision", 12.6, us, []format.CurrencyOption{format.WithPrecision(-3)}, "$13"},
		{"negative amount", -1234.5, es, nil, "-1.234,50 €"},
		{"small amount", 5, us, nil, "$5.00"},
		{"int", 1000, us, nil, "$1,000.00"},
		{"uint8", uint8(7), us, nil, "$7.00"},
		{"float32", float32(2.5), us, nil, "$2.50"},
		{"numeric string", " 1234.5 ", us, nil, "$1,234.50"},
		{"stringer", big.NewFloat(99.999), us, nil, "$100.00"},
		{"precision 3", 1.23456, us, []format.CurrencyOption{format.WithPrecision(3)}, "$1.235"},
		{"no delimiter", 1234567.0, us, []format.CurrencyOption{format.WithDelimiter("")}, "$1234567.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Currency(tt.amount, tt.cfg, tt.opts...))
		})
	}
}

func TestCurrencyFallback(t *testing.T) {
	t.Parallel()

	es := country.Default().Get("es").Currency

	assert.Equal(t, "abc", format.Currency("abc", es))
	assert.Equal(t, "NaN", format.Currency(math.NaN(), es))
	assert.Equal(t, "+Inf", format.Currency(math.Inf(1), es))
	assert.Equal(t, "[1 2]", format.Currency([]int{1, 2}, es))
	assert.Equal(t, "<nil>", format.Currency(nil, es))
}

func TestNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.00", format.Number(0, 2, ".", ","))
	assert.Equal(t, "999", format.Number(999, 0, "", ","))
	assert.Equal(t, "1,000", format.Number(1000, 0, "", ","))
	assert.Equal(t, "123 456 789,1", format.Number(123456789.1, 1, ",", " "))
	assert.Equal(t, "-12.345.678", format.Number(-12345678, 0, "", "."))
}
