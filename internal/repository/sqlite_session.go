package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/jobclock/internal/db"
	"github.com/alexanderramin/jobclock/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database. It is
// constructed over db.DBTX so the same code runs against *sql.DB or a
// transaction started by the unit of work.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Load(ctx context.Context) (*domain.Session, error) {
	s := domain.NewSession()

	var active int
	row := r.db.QueryRowContext(ctx, `SELECT active FROM session_state WHERE id = 'current'`)
	if err := row.Scan(&active); err != nil {
		if err == sql.ErrNoRows {
			// Migrations seed the row; a missing row means the file was tampered with.
			return nil, fmt.Errorf("state row missing: %w", ErrCorruptState)
		}
		return nil, fmt.Errorf("reading session state: %w", err)
	}
	s.Active = active != 0

	rows, err := r.db.QueryContext(ctx,
		`SELECT at, label FROM session_events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("reading session events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var atStr, label string
		if err := rows.Scan(&atStr, &label); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		at, parseErr := time.Parse(time.RFC3339, atStr)
		if parseErr != nil {
			return nil, fmt.Errorf("event timestamp %q: %w", atStr, ErrCorruptState)
		}
		s.Events = append(s.Events, domain.Event{At: at.Local(), Label: label})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	if s.Active && len(s.Events) == 0 {
		return nil, fmt.Errorf("active session with empty log: %w", ErrCorruptState)
	}

	return s, nil
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.Session) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE session_state SET active = ? WHERE id = 'current'`, boolToInt(s.Active)); err != nil {
		return fmt.Errorf("updating session state: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_events`); err != nil {
		return fmt.Errorf("clearing session events: %w", err)
	}

	for i, e := range s.Events {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO session_events (id, seq, at, label) VALUES (?, ?, ?, ?)`,
			uuid.New().String(),
			i,
			e.At.Format(time.RFC3339),
			e.Label,
		); err != nil {
			return fmt.Errorf("inserting event %d: %w", i, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
