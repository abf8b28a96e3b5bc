package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// M holds placeholder values for translated messages.
type M map[string]any

// ReplacePlaceholders substitutes {{name}} markers in template with values
// from the merged maps. Later maps win. Unknown markers are left as is.
func ReplacePlaceholders(template string, placeholders ...M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}

	pairs := make([]string, 0, 2*len(merged))
	for k, v := range merged {
		pairs = append(pairs, "{{"+k+"}}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
