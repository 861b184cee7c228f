package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"grouper/internal/journal"
)

// header is the fixed column layout. Appends across process restarts keep
// extending the same file, so the header is written only when the file is
// new or empty.
var header = []string{"timestamp", "phone", "user_id", "username", "status", "dm_status", "note"}

// Store appends records to a CSV file. Every append flushes, so a crash
// loses at most the in-flight row. Callers must Close when done.
type Store struct {
	mu sync.Mutex
	f  *os.File
	w  *csv.Writer
}

func New(path string) (*Store, error) {
	info, statErr := os.Stat(path)
	fresh := errors.Is(statErr, fs.ErrNotExist) || (statErr == nil && info.Size() == 0)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(header); err == nil {
			w.Flush()
		}
		if err := w.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("write journal header: %w", err)
		}
	}
	return &Store{f: f, w: w}, nil
}

func (s *Store) Append(_ context.Context, rec journal.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := []string{
		rec.Timestamp.UTC().Format(time.RFC3339Nano),
		rec.Phone,
		rec.UserID,
		rec.Username,
		rec.Status,
		rec.DMStatus,
		rec.Note,
	}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("write journal row: %w", err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("flush journal: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
