// Package dataset locates and loads the pre-built SQL dump that
// populates the in-memory dataset store at startup.
package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"metals-tracker/internal/storage/sqlite"
)

// ScriptName is the dump file produced by the dataset build step.
const ScriptName = "schema_and_data.sql"

// Locate finds the SQL dump. Search order: the directory of the running
// executable, a sibling database/ directory of it, the current working
// directory, and a database/ subdirectory of it.
func Locate() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return locate(filepath.Dir(exe), cwd)
}

func locate(exeDir, cwd string) (string, error) {
	candidates := []string{
		filepath.Join(exeDir, ScriptName),
		filepath.Join(filepath.Dir(exeDir), "database", ScriptName),
		filepath.Join(cwd, ScriptName),
		filepath.Join(cwd, "database", ScriptName),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("%s not found, searched: %s, %s", ScriptName, exeDir, cwd)
}

// Load reads the dump at path and executes it into the store.
func Load(ctx context.Context, db *sqlite.DB, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sql dump %s: %w", path, err)
	}
	if err := db.ExecScript(ctx, string(script)); err != nil {
		return fmt.Errorf("load sql dump %s: %w", path, err)
	}
	return nil
}
