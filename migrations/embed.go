package migrations

import "embed"

// Files holds the forward-only calendar store migrations.
//
//go:embed *.sql
var Files embed.FS
