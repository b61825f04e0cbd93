// Package migrations embeds the goose SQL migrations, one directory per
// database dialect.
package migrations

import "embed"

//go:embed mysql/*.sql sqlite3/*.sql
var FS embed.FS
