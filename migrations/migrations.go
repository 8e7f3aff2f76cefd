// Package migrations embeds the goose SQL migrations so they can be
// applied both by the server (auto-migrate) and by the goose CLI.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
