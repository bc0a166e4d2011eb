package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens the document catalog at path, creating parent directories and
// the schema on first use. ":memory:" yields a throwaway in-memory catalog.
// WAL mode keeps the catalog readable while the editor holds it open.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	catalog, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := catalog.Exec(pragma); err != nil {
			catalog.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := Migrate(catalog); err != nil {
		catalog.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return catalog, nil
}
