// Package mentordb holds all the migrations for the mentor points database
package mentordb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the mentor points database
var Migrations = migrate.NewMigrations()
