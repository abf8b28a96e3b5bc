package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/pkg/config"
)

type nested struct {
	URL string `env:"URL"`
}

type testConfig struct {
	Addr     string        `env:"ADDR" envDefault:":8080"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Methods  []string      `env:"METHODS" envDefault:"param,header"`
	Required string        `env:"REQUIRED,required"`
	Redis    nested        `envPrefix:"REDIS_"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[testConfig](config.WithEnvironment(map[string]string{
		"REQUIRED":  "yes",
		"TIMEOUT":   "1m",
		"REDIS_URL": "redis://localhost:6379/0",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, []string{"param", "header"}, cfg.Methods)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestLoadPrefix(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[testConfig](
		config.WithPrefix("APP_"),
		config.WithEnvironment(map[string]string{"APP_REQUIRED": "1", "APP_ADDR": ":9000"}),
	)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Parallel()

	_, err := config.Load[testConfig](config.WithEnvironment(map[string]string{}))
	require.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() {
		config.MustLoad[testConfig](config.WithEnvironment(map[string]string{}))
	})
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("CONFIG_TEST_REQUIRED=from-file\nCONFIG_TEST_ADDR=:7000\n"), 0o644))
	t.Setenv("CONFIG_TEST_ADDR", ":6000")
	t.Cleanup(func() { _ = os.Unsetenv("CONFIG_TEST_REQUIRED") })

	cfg, err := config.Load[testConfig](
		config.WithPrefix("CONFIG_TEST_"),
		config.WithFiles(filepath.Join(dir, "missing.env"), file),
	)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Required)
	assert.Equal(t, ":6000", cfg.Addr)
}
