// Package migrations embeds the SQLite schema of the player store
package migrations

import "embed"

// FS contains embedded SQLite migrations for player storage.
//
//go:embed *.sql
var FS embed.FS
