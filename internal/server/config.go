package server

import (
	"time"

	"github.com/dmitrymomot/localize/pkg/db"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/redis"
	"github.com/dmitrymomot/localize/pkg/storage"
)

// Catalog sources.
const (
	SourceDir = "dir"
	SourceS3  = "s3"
)

// Config is the demo service configuration, read from the environment.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	LocalePath      string   `env:"LOCALE_PATH" envDefault:"locale"`
	TextDomain      string   `env:"TEXT_DOMAIN" envDefault:"app"`
	CatalogSource   string   `env:"CATALOG_SOURCE" envDefault:"dir"`
	Preload         []string `env:"PRELOAD_LOCALES"`
	FallbackLocale  string   `env:"FALLBACK_LOCALE" envDefault:"ca"`
	FallbackCountry string   `env:"FALLBACK_COUNTRY" envDefault:"es"`
	Country         string   `env:"COUNTRY"`
	LocaleMethods   string   `env:"LOCALE_METHODS" envDefault:"param,cookie,session,header"`
	LocaleParam     string   `env:"LOCALE_PARAM" envDefault:"lang"`
	CountriesFile   string   `env:"COUNTRIES_FILE"`

	RegistryCacheTTL time.Duration `env:"REGISTRY_CACHE_TTL" envDefault:"1m"`
	CookieSecret     string        `env:"COOKIE_SECRET"`
	SecureCookies    bool          `env:"SECURE_COOKIES" envDefault:"false"`
	AllowOrigins     []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`

	Log      logger.Config
	Redis    redis.Config
	Database db.Config
	Storage  storage.Config
}
