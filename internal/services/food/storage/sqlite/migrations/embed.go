package migrations

import "embed"

// FS contains the embedded catalog schema and seed data.
//
//go:embed *.sql
var FS embed.FS
