package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"starwars-api/internal/shared/config"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	Driver string
}

// Tx is an open transaction handed explicitly to repository calls.
type Tx struct {
	*gorm.DB
}

func Connect(cfg config.DatabaseConfig) (*DB, error) {
	logger := slog.With("component", "database", "operation", "connect")
	logger.Debug("Initializing database connection")

	dialector, driver, err := Dialector(cfg.URL)
	if err != nil {
		logger.Error("Failed to resolve database driver", "error", err)
		return nil, fmt.Errorf("failed to resolve database driver: %w", err)
	}

	logger.Info("Connecting to database",
		"driver", driver,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(cfg),
	})
	if err != nil {
		logger.Error("Failed to open database connection", "error", err, "driver", driver)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := &DB{DB: gormDB, Driver: driver}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Debug("Testing database connection with ping")
	if err := db.Ping(ctx); err != nil {
		logger.Error("Failed to ping database", "error", err, "driver", driver)
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Error("Failed to close database after ping failure", "close_error", closeErr, "ping_error", err)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established successfully", "driver", driver)
	return db, nil
}

func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithTx runs fn inside a transaction, committing when fn returns nil.
func (db *DB) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	return db.DB.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&Tx{gtx})
	})
}

func newGormLogger(cfg config.DatabaseConfig) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.LogQueries {
		level = gormlogger.Info
	}

	return newSlogGormLogger(slog.Default().With("component", "gorm"), level, cfg.SlowThreshold)
}
