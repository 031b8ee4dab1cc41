// Package migrations embeds the SQL migrations for the sqlite event store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
