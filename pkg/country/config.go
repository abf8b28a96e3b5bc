package country

import "slices"

// DefaultCode is the entry used for countries without their own record.
const DefaultCode = "default"

// Config holds the formatting conventions of one country.
type Config struct {
	DateSelectOrder     DateSelectOrder `yaml:"date_select_order"`
	Currency            Currency        `yaml:"currency"`
	ToSentenceConnector string          `yaml:"to_sentence_connector"`
}

// DateSelectOrder orders the day, month and year fields of date pickers.
// The discard flags hide fields in datetime pickers.
type DateSelectOrder struct {
	Order         []string `yaml:"order"`
	DiscardYear   bool     `yaml:"discard_year"`
	DiscardMonth  bool     `yaml:"discard_month"`
	DiscardDay    bool     `yaml:"discard_day"`
	DiscardHour   bool     `yaml:"discard_hour"`
	DiscardMinute bool     `yaml:"discard_minute"`
}

// Currency describes how amounts are written. Nil fields are unset so the
// formatter can tell a missing value from a zero one.
type Currency struct {
	Precision *int     `yaml:"precision"`
	Unit      *string  `yaml:"unit"`
	Separator *string  `yaml:"separator"`
	Delimiter *string  `yaml:"delimiter"`
	Order     []string `yaml:"order"`
}

// Field names accepted in DateSelectOrder.Order.
const (
	Day   = "day"
	Month = "month"
	Year  = "year"
)

// Tokens accepted in Currency.Order.
const (
	Unit   = "unit"
	Number = "number"
)

func (c Config) clone() Config {
	c.DateSelectOrder.Order = slices.Clone(c.DateSelectOrder.Order)
	c.Currency.Order = slices.Clone(c.Currency.Order)
	return c
}

func (c Config) validate() error {
	if o := c.DateSelectOrder.Order; len(o) > 0 && !isPermutation(o, Day, Month, Year) {
		return ErrInvalidOrder
	}
	if o := c.Currency.Order; len(o) > 0 && !isPermutation(o, Unit, Number) {
		return ErrInvalidOrder
	}
	return nil
}

func isPermutation(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for _, w := range want {
		if !slices.Contains(got, w) {
			return false
		}
	}
	return true
}
