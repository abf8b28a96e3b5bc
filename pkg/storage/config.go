package storage

import "strings"

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// Config points at an S3-compatible bucket holding gettext catalogs laid
// out as {Prefix}{locale}/LC_MESSAGES/{domain}.mo.
type Config struct {
	Bucket    string `env:"STORAGE_BUCKET"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	// Endpoint is set for MinIO and other S3-compatible services.
	Endpoint  string `env:"STORAGE_ENDPOINT"`
	Region    string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	Prefix    string `env:"STORAGE_PREFIX" envDefault:"locale/"`
	PathStyle bool   `env:"STORAGE_PATH_STYLE" envDefault:"false"`
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool { return c.Bucket != "" }

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Prefix != "" && !strings.HasSuffix(c.Prefix, "/") {
		c.Prefix += "/"
	}
	c.Prefix = strings.TrimLeft(c.Prefix, "/")
}

func (c Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
