package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/locale"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		want     string
		lang     string
		country  string
		language string
	}{
		{in: "ca", want: "ca", lang: "ca"},
		{in: "ca_ES", want: "ca_ES", lang: "ca", country: "ES"},
		{in: "es-es", want: "es_ES", lang: "es", country: "ES"},
		{in: " EN-us ", want: "en_US", lang: "en", country: "US"},
		{in: "pt_BR", want: "pt_BR", lang: "pt", country: "BR"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			l, err := locale.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.String())
			assert.Equal(t, tt.lang, l.Language())
			assert.Equal(t, tt.country, l.Country())
			assert.Equal(t, tt.country != "", l.HasCountry())
			assert.False(t, l.IsZero())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "*", "e", "english", "en_", "en_12345", "ca;q=0.8"} {
		_, err := locale.Parse(in)
		require.ErrorIs(t, err, locale.ErrInvalidLocale, in)
	}
}

func TestParseRejectsGettextVariants(t *testing.T) {
	t.Parallel()

	// Modifiers, scripts and codesets have no canonical directory here.
	for _, in := range []string{"ca_ES@valencia", "sr@latin", "zh_Hant", "pt_BR.UTF-8"} {
		_, err := locale.Parse(in)
		require.ErrorIs(t, err, locale.ErrInvalidLocale, in)
	}
}

func TestLocaleHelpers(t *testing.T) {
	t.Parallel()

	l := locale.MustParse("ca_ES")
	assert.Equal(t, "ca", l.Base().String())
	assert.Equal(t, "ca-ES", l.Tag().String())
	assert.Equal(t, "en", locale.MustParse("en").Tag().String())
	assert.True(t, locale.Locale{}.IsZero())

	assert.Panics(t, func() { locale.MustParse("") })
}
