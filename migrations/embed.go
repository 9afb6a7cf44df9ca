// Package migrations holds the goose SQL migrations, embedded so that the
// server, the migrate command and the repository tests share one source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
