package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - CatalogURL: base URL of the product catalog API (GET <base>/products).
//   - RequestTimeout: per-attempt HTTP timeout for catalog requests.
//   - RetryMaxAttempts / RetryDelay: retry budget and initial backoff for
//     catalog requests.
//   - RefreshInterval: how often the catalog is reloaded; zero disables it.
//   - DatabaseDSN: SQLite DSN of the catalog cache.
//   - MetricsAddr: listen address for /metrics; empty disables the endpoint.
//   - LogLevel / LogFormat: slog level (debug|info|warn|error) and handler
//     (text|json).
type Config struct {
	CatalogURL       string        `env:"STOREFRONT_CATALOG_URL"`
	RequestTimeout   time.Duration `env:"STOREFRONT_REQUEST_TIMEOUT"`
	RetryMaxAttempts int           `env:"STOREFRONT_RETRY_MAX_ATTEMPTS"`
	RetryDelay       time.Duration `env:"STOREFRONT_RETRY_DELAY"`
	RefreshInterval  time.Duration `env:"STOREFRONT_REFRESH_INTERVAL"`
	DatabaseDSN      string        `env:"STOREFRONT_DATABASE_DSN"`
	MetricsAddr      string        `env:"STOREFRONT_METRICS_ADDR"`
	LogLevel         string        `env:"STOREFRONT_LOG_LEVEL"`
	LogFormat        string        `env:"STOREFRONT_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults. The default cache lives in
// memory and disappears with the process.
func (c *Config) LoadDefaults() {
	c.CatalogURL = "https://fakestoreapi.com"
	c.RequestTimeout = 10 * time.Second
	c.RetryMaxAttempts = 3
	c.RetryDelay = 200 * time.Millisecond
	c.RefreshInterval = 5 * time.Minute
	c.DatabaseDSN = "file:storefront?mode=memory&cache=shared"
	c.MetricsAddr = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, then the JSON file given by
// -c/-config, then STOREFRONT_* environment variables, then flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
