// Package migrations embeds the goose migrations for the dev server's
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
