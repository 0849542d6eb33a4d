package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_CreatesSchema(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"games", "events", "migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, len(migrations), count)
}

func TestMigrate_RecordsVersionsInOrder(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	require.NoError(t, Migrate(db))

	applied, err := appliedVersions(db)
	require.NoError(t, err)
	for _, m := range migrations {
		assert.True(t, applied[m.Version], m.Name)
	}
}
