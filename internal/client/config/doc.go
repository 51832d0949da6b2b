// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. STOREFRONT_* environment variables.
//  4. Command-line flags.
//
// # JSON schema
//
//	{
//	  "catalog_url": "https://fakestoreapi.com",
//	  "request_timeout": "10s",
//	  "retry_max_attempts": 3,
//	  "retry_delay": "200ms",
//	  "refresh_interval": "5m",
//	  "database_dsn": "file:storefront?mode=memory&cache=shared",
//	  "metrics_addr": ":9090",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
