package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDBAndMigrate(t *testing.T) {
	db, err := openDB(filepath.Join(t.TempDir(), "nested", "turdle.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, migrate(db))
	// Second run is a no-op.
	require.NoError(t, migrate(db))

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 2, applied)

	_, err = db.Exec(`INSERT INTO daily_results(user_id, date, word_index, guesses, elapsed_ms) VALUES ('u','2026-10-17',1,3,100)`)
	assert.NoError(t, err)
}
