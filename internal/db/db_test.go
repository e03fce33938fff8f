package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	database, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, database.Close()) })

	assert.NoError(t, database.Ping())
}

func TestMigrationsCreateAndSeedTables(t *testing.T) {
	database, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, database.Close()) })

	var tableName string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='clinics'").Scan(&tableName)
	require.NoError(t, err)
	assert.Equal(t, "clinics", tableName)

	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='tips'").Scan(&tableName)
	require.NoError(t, err)
	assert.Equal(t, "tips", tableName)

	var clinics, tips int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM clinics").Scan(&clinics))
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM tips").Scan(&tips))
	assert.Equal(t, 5, clinics)
	assert.Equal(t, 6, tips)
}

func TestOpenForTestingIsolation(t *testing.T) {
	first, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, first.Close()) })

	second, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, second.Close()) })

	_, err = first.Exec("INSERT INTO tips (category, title, body, cadence) VALUES ('x', 'y', 'z', 'Daily')")
	require.NoError(t, err)

	var firstCount, secondCount int
	require.NoError(t, first.QueryRow("SELECT COUNT(*) FROM tips").Scan(&firstCount))
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM tips").Scan(&secondCount))
	assert.Equal(t, firstCount-1, secondCount)
}
