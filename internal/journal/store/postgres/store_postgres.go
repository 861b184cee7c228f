package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"grouper/internal/journal"
)

// schema is applied on demand so a fresh database works without a separate
// migration step.
const schema = `
	CREATE TABLE IF NOT EXISTS enroll_outcomes (
		id        BIGSERIAL   PRIMARY KEY,
		run_id    UUID        NOT NULL,
		ts        TIMESTAMPTZ NOT NULL,
		phone     TEXT        NOT NULL,
		user_id   TEXT        NOT NULL DEFAULT '',
		username  TEXT        NOT NULL DEFAULT '',
		status    TEXT        NOT NULL,
		dm_status TEXT        NOT NULL DEFAULT '',
		note      TEXT        NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS enroll_outcomes_run_id_idx ON enroll_outcomes (run_id);
`

// Store persists records in PostgreSQL. Unlike the CSV store it keeps the
// run ID, so outcomes of separate scheduled runs stay distinguishable.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the outcomes table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure journal schema: %w", err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, rec journal.Record) error {
	query := `
		INSERT INTO enroll_outcomes (run_id, ts, phone, user_id, username, status, dm_status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.RunID,
		rec.Timestamp.UTC(),
		rec.Phone,
		rec.UserID,
		rec.Username,
		rec.Status,
		rec.DMStatus,
		rec.Note,
	)
	if err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}
	return nil
}

// ListByRun returns one run's records in append order.
func (s *Store) ListByRun(ctx context.Context, runID uuid.UUID) ([]journal.Record, error) {
	query := `
		SELECT run_id, ts, phone, user_id, username, status, dm_status, note
		FROM enroll_outcomes
		WHERE run_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var records []journal.Record
	for rows.Next() {
		var rec journal.Record
		err := rows.Scan(
			&rec.RunID,
			&rec.Timestamp,
			&rec.Phone,
			&rec.UserID,
			&rec.Username,
			&rec.Status,
			&rec.DMStatus,
			&rec.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return records, nil
}
