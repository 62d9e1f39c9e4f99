// Package migrations embeds the SQL migration files so goose can apply
// them at server bootstrap and in tests without a filesystem path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
