// Package migrations embeds the SQL schema migrations applied by goose at
// server startup when the Postgres backend is selected.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
