package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/aleksandrpnshkn/gnome-timer/internal/logging"
)

func openTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "migrations.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func readSchemaVersion(t *testing.T, db *sql.DB) int {
	var version int
	require.NoError(t, db.QueryRow(`PRAGMA user_version`).Scan(&version))
	return version
}

func TestApply(t *testing.T) {
	db := openTestDB(t)

	err := Apply(db)
	require.NoError(t, err)

	// The countdowns table exists and accepts rows
	_, err = db.Exec(`INSERT INTO countdowns (configured_seconds, started_at) VALUES (60, '2025-06-23T11:20:10Z')`)
	assert.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM countdowns`).Scan(&count))
	logging.Debugf("countdown rows after schema apply: %d\n", count)
	assert.Equal(t, 1, count)
}

func TestApply_RecordsSchemaVersion(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Apply(db))
	assert.Equal(t, 1, readSchemaVersion(t, db))
}

func TestApply_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Apply(db))
	require.NoError(t, Apply(db))

	assert.Equal(t, 1, readSchemaVersion(t, db))

	// A second apply must not recreate the table and lose rows
	_, err := db.Exec(`INSERT INTO countdowns (configured_seconds, started_at) VALUES (90, '2025-06-23T12:00:00Z')`)
	require.NoError(t, err)
	require.NoError(t, Apply(db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM countdowns`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoadSteps(t *testing.T) {
	steps, err := loadSteps()
	require.NoError(t, err)
	require.NotEmpty(t, steps)

	assert.Equal(t, 1, steps[0].version)
	assert.Equal(t, "create_countdowns", steps[0].name)
	assert.Contains(t, steps[0].sql, "countdowns")
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_countdowns.sql"))
	assert.Equal(t, 0, extractVersion("not_a_schema_step.sql"))
}

func TestStepName(t *testing.T) {
	assert.Equal(t, "create_countdowns", stepName("000001_create_countdowns.sql"))
}
