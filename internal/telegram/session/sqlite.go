// Package session persists MTProto authorization between runs.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	tgsession "github.com/gotd/td/session"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS telegram_session (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data BLOB NOT NULL
)`

// SQLite stores the session as a single row in a local SQLite file.
type SQLite struct {
	db *sql.DB
}

var _ tgsession.Storage = (*SQLite)(nil)

// OpenSQLite opens the session database at path, creating it when absent.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure session schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// LoadSession implements gotd's session storage contract.
func (s *SQLite) LoadSession(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM telegram_session WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, tgsession.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return data, nil
}

// StoreSession implements gotd's session storage contract.
func (s *SQLite) StoreSession(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO telegram_session (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data`, data)
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
