package catalog_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/locale"
)

// writeMO compiles messages into a little-endian .mo file at
// {root}/{name}/LC_MESSAGES/{domain}.mo.
func writeMO(t *testing.T, root, name, domain string, messages map[string]string) {
	t.Helper()

	messages[""] = "Content-Type: text/plain; charset=UTF-8\nPlural-Forms: nplurals=2; plural=(n != 1);\n"
	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	n := uint32(len(keys))
	origTab := uint32(28)
	transTab := origTab + 8*n
	offset := transTab + 8*n

	var table, strs []byte
	put := func(s string) {
		table = binary.LittleEndian.AppendUint32(table, uint32(len(s)))
		table = binary.LittleEndian.AppendUint32(table, offset+uint32(len(strs)))
		strs = append(strs, s...)
		strs = append(strs, 0)
	}
	for _, k := range keys {
		put(k)
	}
	for _, k := range keys {
		put(messages[k])
	}

	var out []byte
	for _, v := range []uint32{0x950412de, 0, n, origTab, transTab, 0, offset} {
		out = binary.LittleEndian.AppendUint32(out, v)
	}
	out = append(out, table...)
	out = append(out, strs...)

	dir := filepath.Join(root, name, "LC_MESSAGES")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain+".mo"), out, 0o644))
}

func TestCatalogs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeMO(t, root, "ca", "app", map[string]string{
		"January":           "Gener",
		"March":             "Març",
		"and":               "i",
		"one file\x00files": "un fitxer\x00%d fitxers",
	})
	writeMO(t, root, "ca_ES", "app", map[string]string{
		"and": "i també",
	})

	cats := catalog.New(root, "app")
	require.Equal(t, "app", cats.Domain())
	require.Equal(t, root, cats.Root())
	cats.Preload("ca")

	t.Run("translates", func(t *testing.T) {
		tr := cats.For(locale.MustParse("ca"))
		assert.Equal(t, "Gener", tr.Gettext("January"))
		assert.Equal(t, "Març", tr.Gettext("March"))
		assert.Equal(t, "April", tr.Gettext("April"))
	})

	t.Run("falls back to language catalog", func(t *testing.T) {
		tr := cats.For(locale.MustParse("ca_ES"))
		assert.Equal(t, "i també", tr.Gettext("and"))
		assert.Equal(t, "Gener", tr.Gettext("January"))
	})

	t.Run("plurals", func(t *testing.T) {
		tr := cats.For(locale.MustParse("ca"))
		assert.Equal(t, "un fitxer", tr.NGettext("one file", "files", 1))
		assert.Equal(t, "%d fitxers", tr.NGettext("one file", "files", 3))
	})

	t.Run("missing catalog", func(t *testing.T) {
		tr := cats.For(locale.MustParse("fr"))
		assert.Equal(t, "January", tr.Gettext("January"))
		assert.Equal(t, "files", tr.NGettext("one file", "files", 2))
	})

	t.Run("zero locale", func(t *testing.T) {
		assert.Equal(t, "January", cats.For(locale.Locale{}).Gettext("January"))
	})
}

func TestMessages(t *testing.T) {
	t.Parallel()

	m := catalog.Messages{
		"and":        "i",
		"apple\x000": "poma",
		"apple\x001": "pomes",
	}
	assert.Equal(t, "i", m.Gettext("and"))
	assert.Equal(t, "or", m.Gettext("or"))
	assert.Equal(t, "poma", m.NGettext("apple", "apples", 1))
	assert.Equal(t, "pomes", m.NGettext("apple", "apples", 5))
	assert.Equal(t, "pears", m.NGettext("pear", "pears", 0))
	assert.Equal(t, "and", catalog.Identity.Gettext("and"))
}
