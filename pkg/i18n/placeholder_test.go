package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/i18n"
)

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		template     string
		placeholders []i18n.M
		expected     string
	}{
		{"no placeholders", "Hola, món!", nil, "Hola, món!"},
		{"single", "Hola, {{name}}!", []i18n.M{{"name": "Joan"}}, "Hola, Joan!"},
		{"repeated", "{{name}} i {{name}}", []i18n.M{{"name": "Anna"}}, "Anna i Anna"},
		{"missing stays", "{{n}} fitxers a {{dir}}", []i18n.M{{"n": 3}}, "3 fitxers a {{dir}}"},
		{"empty map", "Hola, {{name}}!", []i18n.M{{}}, "Hola, {{name}}!"},
		{"nil value", "Valor: {{val}}", []i18n.M{{"val": nil}}, "Valor: <nil>"},
		{"later map wins", "{{count}} pomes", []i18n.M{{"count": 1}, {"count": "moltes"}}, "moltes pomes"},
		{"value is not re-expanded", "{{a}}", []i18n.M{{"a": "{{b}}", "b": "x"}}, "{{b}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.ReplacePlaceholders(tt.template, tt.placeholders...))
		})
	}
}
