package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	files       []string
	prefix      string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithFiles sets the env files read before parsing. Missing files are
// skipped and variables already set in the process win. The default is
// ".env".
func WithFiles(files ...string) Option {
	return func(o *options) { o.files = files }
}

// WithPrefix prepends prefix to every variable name, e.g. "LOCALIZE_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment parses from m instead of the process environment.
// Env files are not read.
func WithEnvironment(m map[string]string) Option {
	return func(o *options) { o.environment = m }
}

// Load parses environment variables into a new T using its env and
// envDefault struct tags:
//
//	type Config struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any](opts ...Option) (T, error) {
	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	var cfg T
	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	} else if err := loadFiles(o.files); err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is Load for required configuration; it panics on error.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func loadFiles(files []string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrLoadingFile, f, err)
		}
	}
	return nil
}
