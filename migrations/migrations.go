// Package migrations embeds the goose SQL migrations so the binary can
// migrate without the migrations directory on disk.
package migrations

import "embed"

// FS holds every *.sql migration in version order
//
//go:embed *.sql
var FS embed.FS
