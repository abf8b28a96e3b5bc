package i18n

import "context"

// Source yields locale candidates for one resolution method, best first.
type Source struct {
	Method Method
	Lookup func(ctx context.Context) []string
}

// RawSource reads a raw language list, such as an Accept-Language header
// or a cookie value, and splits it with ParseCandidates.
func RawSource(m Method, read func(ctx context.Context) string) Source {
	return Source{
		Method: m,
		Lookup: func(ctx context.Context) []string {
			return ParseCandidates(read(ctx))
		},
	}
}

// ListSource yields an already split list of candidates.
func ListSource(m Method, list func(ctx context.Context) []string) Source {
	return Source{
		Method: m,
		Lookup: func(ctx context.Context) []string {
			return clean(list(ctx))
		},
	}
}
