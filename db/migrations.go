// Package db holds the SQL migrations, embedded so the server binary can
// bring up its own schema.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
