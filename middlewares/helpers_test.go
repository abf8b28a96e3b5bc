package middlewares_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/locale"
)

// newResolver serves catalogs for the given locale names only.
func newResolver(t *testing.T, names ...string) *i18n.Resolver {
	t.Helper()

	fsys := fstest.MapFS{}
	for _, n := range names {
		fsys[n+"/LC_MESSAGES/app.mo"] = &fstest.MapFile{Data: []byte("mo")}
	}
	reg, err := locale.NewRegistry(locale.NewFSBackend(fsys))
	require.NoError(t, err)
	return i18n.NewResolver(reg)
}

type messages map[string]catalog.Messages

func (m messages) For(l locale.Locale) catalog.Translator {
	if tr, ok := m[l.Language()]; ok {
		return tr
	}
	return catalog.Identity
}
