package migrations

import "embed"

// Migration files for both mirror backends, bundled at compile time
// so the binary carries its own schema
//
//go:embed sqlite/*.sql
var SqliteMigrations embed.FS

//go:embed postgres/*.sql
var PostgresMigrations embed.FS
