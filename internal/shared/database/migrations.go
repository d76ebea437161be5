package database

import (
	"fmt"
	"log/slog"
)

// RunMigrations creates or updates the tables, indexes and constraints
// declared on the given models.
func (db *DB) RunMigrations(models ...interface{}) error {
	logger := slog.With("component", "migrations", "driver", db.Driver)
	logger.Info("Starting database migrations", "models", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("All migrations completed successfully")
	return nil
}
