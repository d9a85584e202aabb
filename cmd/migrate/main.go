// Command migrate applies the database schema. It runs before the service
// starts and fails loudly; the service binary performs no schema work.
package main

import (
	"log/slog"
	"os"

	"craftapp/config"
	logs "craftapp/internal/infra/log"
	"craftapp/internal/infra/persistence/postgres"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get database handle", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(db, logger); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}
