// Package client bootstraps the local storage of the storefront CLI: it opens
// the SQLite catalog cache and applies the embedded goose migrations.
//
// The cache is in memory by default (see config.Config.DatabaseDSN) and only
// lives as long as the process.
package client
