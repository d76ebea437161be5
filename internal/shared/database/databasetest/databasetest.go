// Package databasetest opens throwaway SQLite databases for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"starwars-api/internal/shared/config"
	"starwars-api/internal/shared/database"

	"github.com/stretchr/testify/require"
)

// New returns a migrated database backed by a file in t.TempDir. A single
// connection is used so every query in a test sees the same snapshot.
func New(t testing.TB, models ...interface{}) *database.DB {
	t.Helper()
	return NewPooled(t, 1, models...)
}

// NewPooled is New with maxOpenConns connections, matching how the server
// runs against a file store.
func NewPooled(t testing.TB, maxOpenConns int, models ...interface{}) *database.DB {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		URL:          filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: maxOpenConns,
		MaxIdleConns: maxOpenConns,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.RunMigrations(models...))
	return db
}
