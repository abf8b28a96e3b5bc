package country

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yml
var defaultYAML []byte

// Store is a read-only table of country configurations keyed by lowercase
// country code. It always contains a "default" entry.
type Store struct {
	entries map[string]Config
}

var defaultStore = sync.OnceValue(func() *Store {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("country: embedded table: %v", err))
	}
	return s
})

// Default returns the store built from the embedded countries table.
func Default() *Store { return defaultStore() }

// Load reads a YAML countries table from r.
func Load(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("country: read: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a YAML countries table from fsys.
func LoadFile(fsys fs.FS, name string) (*Store, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("country: read %q: %w", name, err)
	}
	return Parse(data)
}

// MustLoadFile is LoadFile that panics on error.
func MustLoadFile(fsys fs.FS, name string) *Store {
	s, err := LoadFile(fsys, name)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes a YAML countries table. Keys are normalized with
// SymbolicKeys before decoding, so "Date-Select-Order" and
// "date_select_order" are the same field.
func Parse(data []byte) (*Store, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	normalized, err := yaml.Marshal(SymbolicKeys(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	entries := make(map[string]Config, len(raw))
	dec := yaml.NewDecoder(bytes.NewReader(normalized))
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	if _, ok := entries[DefaultCode]; !ok {
		return nil, ErrMissingDefault
	}
	for code, cfg := range entries {
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", err, code)
		}
	}
	return &Store{entries: entries}, nil
}

// Get returns the configuration of code, or the default entry when code
// has none. Lookups are case-insensitive.
func (s *Store) Get(code string) Config {
	if cfg, ok := s.entries[normalize(code)]; ok {
		return cfg.clone()
	}
	return s.entries[DefaultCode].clone()
}

// Has reports whether code has its own entry.
func (s *Store) Has(code string) bool {
	_, ok := s.entries[normalize(code)]
	return ok
}

// Codes returns every configured code, "default" included, sorted.
func (s *Store) Codes() []string {
	return slices.Sorted(maps.Keys(s.entries))
}

func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
