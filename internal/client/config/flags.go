package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

var knownFlags = []string{"-u", "-t", "-r", "-d", "-m", "-l"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-u string   catalog base URL
//	-t int      request timeout (seconds)
//	-r int      catalog refresh interval (seconds, 0 disables)
//	-d string   SQLite DSN of the catalog cache
//	-m string   metrics listen address
//	-l string   log level
//
// Only the flags above are looked at; anything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.CatalogURL, "u", cfg.CatalogURL, "catalog base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	refresh := fs.Int("r", int(cfg.RefreshInterval.Seconds()), "catalog refresh interval (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "catalog cache DSN")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if seen["t"] {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	if seen["r"] {
		cfg.RefreshInterval = time.Duration(*refresh) * time.Second
	}
	return nil
}
