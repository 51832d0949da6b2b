// Package migrations embeds the goose migrations of the local catalog cache.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
