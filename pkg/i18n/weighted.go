package i18n

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// maxCandidatesLength caps the input of ParseCandidates; longer values are
// truncated.
const maxCandidatesLength = 4096

var weightedItem = regexp.MustCompile(`([^;]+);q=([^,]+),?`)

type weightedGroup struct {
	weight float64
	items  []string
}

// ParseCandidates splits a comma-separated language list into candidates,
// best first. Lists with quality weights such as
// "es-es,es;q=0.8,en;q=0.5" are ordered by weight; every language before a
// ";q=" shares its weight, so the result is [es-es es en]. Lists without
// weights keep their order. A malformed weight counts as 0, and a group
// with the same weight as an earlier one replaces it.
func ParseCandidates(raw string) []string {
	if len(raw) > maxCandidatesLength {
		raw = raw[:maxCandidatesLength]
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if !strings.Contains(raw, "q=") {
		return clean(strings.Split(raw, ","))
	}

	var groups []weightedGroup
	for _, m := range weightedItem.FindAllStringSubmatch(raw, -1) {
		w, err := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
		if err != nil {
			w = 0
		}
		g := weightedGroup{weight: w, items: strings.Split(m[1], ",")}

		if i := slices.IndexFunc(groups, func(x weightedGroup) bool { return x.weight == w }); i >= 0 {
			groups[i] = g
			continue
		}
		groups = append(groups, g)
	}

	slices.SortStableFunc(groups, func(a, b weightedGroup) int {
		return cmp.Compare(b.weight, a.weight)
	})

	var out []string
	for _, g := range groups {
		out = append(out, g.items...)
	}
	return clean(out)
}

func clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
