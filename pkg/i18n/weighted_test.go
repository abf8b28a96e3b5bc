package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localize/pkg/i18n"
)

func TestParseCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"weights in order", "a;q=0.8,b;q=0.5", []string{"a", "b"}},
		{"weights reversed", "a;q=0.3,b;q=0.9", []string{"b", "a"}},
		{"plain list", "es,en", []string{"es", "en"}},
		{"single", "ca", []string{"ca"}},
		{"grouped before weight", "es-es,es;q=0.8,en;q=0.5", []string{"es-es", "es", "en"}},
		{"spaces trimmed", " ca-ES , en ", []string{"ca-ES", "en"}},
		{"spaces with weights", "en-US, en;q=0.9, fr;q=0.7", []string{"en-US", "en", "fr"}},
		{"malformed weight is zero", "a;q=abc,b;q=0.1", []string{"b", "a"}},
		{"same weight replaces group", "a;q=0.5,b;q=0.5", []string{"b"}},
		{"empty items dropped", "es,,en,", []string{"es", "en"}},
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"only commas", ",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParseCandidates(tt.raw))
		})
	}
}

func TestParseCandidatesTruncates(t *testing.T) {
	t.Parallel()

	raw := "es," + strings.Repeat("x", 5000)
	got := i18n.ParseCandidates(raw)
	assert.Len(t, got, 2)
	assert.Equal(t, "es", got[0])
	assert.Len(t, got[1], 4096-len("es,"))
}
