package memory

import (
	"context"
	"sync"

	"grouper/internal/journal"
)

// Store keeps records in memory. Used by tests and dry runs.
type Store struct {
	mu      sync.RWMutex
	records []journal.Record
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, rec journal.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Records returns a copy of everything appended so far, in append order.
func (s *Store) Records() []journal.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]journal.Record{}, s.records...)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
