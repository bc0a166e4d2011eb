package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open. Statements use IF NOT EXISTS so
// re-running the full list against an existing database is safe; additive
// ALTER TABLE statements rely on the duplicate-column tolerance in Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id             TEXT PRIMARY KEY,
		path           TEXT NOT NULL UNIQUE,
		name           TEXT NOT NULL,
		year           INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL,
		last_opened_at TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_last_opened ON documents(last_opened_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
