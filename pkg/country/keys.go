package country

import (
	"fmt"
	"strings"
)

var keyReplacer = strings.NewReplacer("-", "_", " ", "_")

// SymbolicKeys returns a copy of m with every key trimmed, lowercased and
// with dashes and spaces turned into underscores. Nested maps and slices
// are converted too; slice order is kept.
func SymbolicKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[symbol(k)] = symbolicValue(v)
	}
	return out
}

func symbol(k string) string {
	return keyReplacer.Replace(strings.ToLower(strings.TrimSpace(k)))
}

func symbolicValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return SymbolicKeys(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[symbol(fmt.Sprint(k))] = symbolicValue(v)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, v := range t {
			out[i] = symbolicValue(v)
		}
		return out
	default:
		return v
	}
}
