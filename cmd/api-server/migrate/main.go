package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/uptrace/bun/migrate"

	"github.com/ecochain/ecochain-api/pkg/config"
	"github.com/ecochain/ecochain-api/pkg/migrations/ecodb"
	"github.com/ecochain/ecochain-api/pkg/pgutil"
	mghelper "github.com/ecochain/ecochain-api/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	// Connect to database
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for EcoChain database (%s)...\n", cfg.Database.Database)

	// Create migrator
	migrator := migrate.NewMigrator(db, ecodb.Migrations)

	// Run migrations with args
	err = mghelper.RunMigrations(ctx, migrator, flag.Args()...)
	if err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
