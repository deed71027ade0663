package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/mentor-api/pkg/config"
	"github.com/chainsafe/mentor-api/pkg/migrations/mentordb"
	"github.com/chainsafe/mentor-api/pkg/pgutil"
	mghelper "github.com/chainsafe/mentor-api/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "", "Path to optional configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration: %s", err.Error())
	}

	ctx := context.Background()

	// Connect to database
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Println("Running migrations for mentor points database...")

	// Create migrator
	migrator := migrate.NewMigrator(db, mentordb.Migrations)

	// Run migrations with args
	err = mghelper.RunMigrations(ctx, migrator, flag.Args()...)
	if err != nil {
		mghelper.Exitf("%s", err)
	}
}
