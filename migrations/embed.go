// Package migrations embeds the goose SQL migrations so the binary can apply
// them at startup.
package migrations

import "embed"

// FS holds every migration file at its root.
//
//go:embed *.sql
var FS embed.FS
