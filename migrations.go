// Package favsetter holds the assets embedded into the favsetter binaries.
package favsetter

import "embed"

// Migrations contains the goose SQL migrations under "migrations/".
//
//go:embed migrations/*.sql
var Migrations embed.FS
