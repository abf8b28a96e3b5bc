package locale

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"slices"
)

// Backend answers whether a catalog object exists. Keys use forward
// slashes: "ca_ES/LC_MESSAGES/app.mo".
type Backend interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// Lister is implemented by backends that can enumerate locale directories.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// FSBackend checks catalogs in an fs.FS.
type FSBackend struct {
	fsys fs.FS
}

// NewFSBackend wraps fsys, typically an embed.FS or fstest.MapFS.
func NewFSBackend(fsys fs.FS) *FSBackend {
	return &FSBackend{fsys: fsys}
}

// NewDirBackend checks catalogs below dir on the local filesystem.
func NewDirBackend(dir string) *FSBackend {
	return &FSBackend{fsys: os.DirFS(dir)}
}

func (b *FSBackend) Exists(_ context.Context, key string) (bool, error) {
	if !fs.ValidPath(key) {
		return false, nil
	}
	info, err := fs.Stat(b.fsys, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// List returns the top-level directory names, sorted.
func (b *FSBackend) List(_ context.Context) ([]string, error) {
	entries, err := fs.ReadDir(b.fsys, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}
