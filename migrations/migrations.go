// Package migrations embeds the goose SQL migrations applied at startup
// and by libctl init.
package migrations

import "embed"

//go:embed *.sql
var MigrationFiles embed.FS
