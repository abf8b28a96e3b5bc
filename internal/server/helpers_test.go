package server_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/internal/server"
	"github.com/dmitrymomot/localize/pkg/config"
)

// writeMO compiles messages into {root}/{name}/LC_MESSAGES/app.mo.
func writeMO(t *testing.T, root, name string, messages map[string]string) {
	t.Helper()

	messages[""] = "Content-Type: text/plain; charset=UTF-8\n"
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
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.mo"), out, 0o644))
}

// testConfig returns the default configuration over a catalog directory
// holding "ca" and "en".
func testConfig(t *testing.T, env map[string]string) server.Config {
	t.Helper()

	root := t.TempDir()
	writeMO(t, root, "ca", map[string]string{
		"Hello": "Hola",
		"and":   "i",
		"March": "Març",
	})
	writeMO(t, root, "en", map[string]string{
		"Hello": "Hello",
	})

	vars := map[string]string{"LOCALE_PATH": root}
	for k, v := range env {
		vars[k] = v
	}
	cfg, err := config.Load[server.Config](config.WithEnvironment(vars))
	require.NoError(t, err)
	return cfg
}
