// Package migrations embeds the trace-store schema files at compile time
// so the semguard binary deploys without external SQL assets.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SqliteMigrations embed.FS

//go:embed postgres/*.sql
var PostgresMigrations embed.FS
