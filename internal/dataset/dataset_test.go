package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metals-tracker/internal/storage/sqlite"
)

func writeScript(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, ScriptName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocate_SearchOrder(t *testing.T) {
	exeDir := t.TempDir()
	cwd := t.TempDir()

	// Nothing anywhere: error names the searched directories.
	_, err := locate(exeDir, cwd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ScriptName)
	assert.Contains(t, err.Error(), exeDir)

	// Lowest-priority location first, then add higher-priority ones and
	// check each shadows the previous.
	cwdDB := writeScript(t, filepath.Join(cwd, "database"), "-- cwd database")
	got, err := locate(exeDir, cwd)
	require.NoError(t, err)
	assert.Equal(t, cwdDB, got)

	cwdDirect := writeScript(t, cwd, "-- cwd")
	got, err = locate(exeDir, cwd)
	require.NoError(t, err)
	assert.Equal(t, cwdDirect, got)

	sibling := writeScript(t, filepath.Join(filepath.Dir(exeDir), "database"), "-- sibling")
	got, err = locate(exeDir, cwd)
	require.NoError(t, err)
	assert.Equal(t, sibling, got)

	exeDirect := writeScript(t, exeDir, "-- exe dir")
	got, err = locate(exeDir, cwd)
	require.NoError(t, err)
	assert.Equal(t, exeDirect, got)
}

func TestLoad_ExecutesScript(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `
		CREATE TABLE current_prices (metal TEXT, date TEXT, close_price REAL);
		INSERT INTO current_prices VALUES ('GOLD', '2024-03-05', 2110.0);
		INSERT INTO current_prices VALUES ('SILVER', '2024-03-05', 24.1);
	`)

	db, err := sqlite.Open(sqlite.MemoryDSN("dataset_load_test"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Load(context.Background(), db, path))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM current_prices`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestLoad_MissingFile(t *testing.T) {
	db, err := sqlite.Open(sqlite.MemoryDSN("dataset_missing_test"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	err = Load(context.Background(), db, filepath.Join(t.TempDir(), ScriptName))
	require.Error(t, err)
}
