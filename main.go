// Package main is the entry point for the staffdir API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"staffdir/src/app/server"
	"staffdir/src/infra/config"
	"staffdir/src/infra/db"
	"staffdir/src/infra/logger"
	"staffdir/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Apply pending schema migrations
	if cfg.Database.MigrateOnStart {
		if err := pg.Migrate(); err != nil {
			return err
		}
	}

	// Initialize repositories
	directoryRepo := repo.NewPostgresRepository(pg, log)

	// Create and run HTTP server
	srv := server.New(cfg, log, directoryRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
