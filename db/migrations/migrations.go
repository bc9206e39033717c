package migrations

import "embed"

// FS holds the PostgreSQL schema migrations read by db.Migrate.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects. Bump it together
// with every new migration pair.
const Version = 1
