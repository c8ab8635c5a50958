// Package migrations embeds SQL migrations applied on server startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
