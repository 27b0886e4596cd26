// Package sudoku exposes repo-level embedded assets.
package sudoku

import "embed"

// Migrations holds the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
