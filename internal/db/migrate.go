package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the whole
// list re-runs on every open.
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

var migrations = []string{
	// Single-row table holding the active flag. The CHECK pins the row key so
	// there is exactly one state row to read and update.
	`CREATE TABLE IF NOT EXISTS session_state (
		id     TEXT PRIMARY KEY CHECK(id = 'current'),
		active INTEGER NOT NULL DEFAULT 0 CHECK(active IN (0, 1))
	)`,

	`INSERT OR IGNORE INTO session_state (id, active) VALUES ('current', 0)`,

	// Ordered event log for the current session. seq preserves insertion
	// order exactly; at is RFC3339 with second precision.
	`CREATE TABLE IF NOT EXISTS session_events (
		id    TEXT PRIMARY KEY,
		seq   INTEGER NOT NULL UNIQUE,
		at    TEXT NOT NULL,
		label TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_events_seq ON session_events(seq)`,
}
