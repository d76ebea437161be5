package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"starwars-api/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Connect(config.DatabaseConfig{
		URL:          filepath.Join(t.TempDir(), "connection.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.RunMigrations(&widget{}))
	return db
}

func TestConnectSQLite(t *testing.T) {
	db := openTestDB(t)

	assert.Equal(t, DriverSQLite, db.Driver)
	assert.NoError(t, db.Ping(context.Background()))
	assert.True(t, db.Migrator().HasTable(&widget{}))
}

func TestWithTxCommits(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		return tx.Create(&widget{Name: "hyperdrive"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	errAbort := errors.New("abort")

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.Create(&widget{Name: "motivator"}).Error; err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.RunMigrations(&widget{}))
}
