package main

import (
	"log"

	"github.com/joho/godotenv"

	"datalens/adapters/ingest"
	"datalens/adapters/postgres"
	"datalens/internal/config"
	"datalens/ports"
	"datalens/ui"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var reports ports.ReportRepository
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		reports = postgres.NewReportRepository(db)
	}

	app, err := ui.NewApp(cfg, ingest.NewFileReader(), reports)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
