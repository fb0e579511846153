// Package migrations embeds the goose SQL migrations that create the
// task board schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
