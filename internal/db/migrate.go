package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// seq preserves insertion order; the JSON format has no id, so id is
// internal to this backend.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS study_sessions (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		date       TEXT NOT NULL,
		minutes    INTEGER NOT NULL,
		topic      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_sessions_date ON study_sessions(date)`,
}
