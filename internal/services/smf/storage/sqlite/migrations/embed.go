package migrations

import "embed"

// FS contains embedded SQLite migrations for family storage.
//
//go:embed *.sql
var FS embed.FS
