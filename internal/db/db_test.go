package db

import (
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndMigrateSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lawfirm.db")

	database, err := Init(DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(database) })

	require.NoError(t, RunMigrations(database.DB, DriverSQLite))

	version, err := MigrationVersion(database.DB, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)

	for _, table := range []string{"users", "cases", "appointments", "videos"} {
		var count int
		err := database.Get(&count, `SELECT COUNT(*) FROM `+table)
		require.NoError(t, err, table)
		assert.Zero(t, count, table)
	}

	require.NoError(t, MigrateDown(database.DB, DriverSQLite))
	version, err = MigrationVersion(database.DB, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
}

func TestDialectFor(t *testing.T) {
	dialect, err := dialectFor(DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, goose.DialectSQLite3, dialect)

	dialect, err = dialectFor(DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, goose.DialectPostgres, dialect)

	_, err = dialectFor("mysql")
	assert.Error(t, err)
}
