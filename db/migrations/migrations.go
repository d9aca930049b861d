package migrations

import "embed"

// FS holds the schema of clients, campaigns and daily_metrics, applied
// through the golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to.
const Version = 2
