// Package ecodb holds all the migrations for the EcoChain database
package ecodb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the EcoChain database
var Migrations = migrate.NewMigrations()
