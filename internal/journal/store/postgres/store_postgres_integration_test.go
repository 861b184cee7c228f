//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"grouper/internal/journal"
	"grouper/internal/journal/store/postgres"
	"grouper/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *postgres.Store
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = postgres.New(s.pg.DB)
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "enroll_outcomes"))
}

func (s *PostgresStoreSuite) newRecord(runID uuid.UUID, phone, status string) journal.Record {
	return journal.Record{
		RunID:     runID,
		Timestamp: time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC),
		Phone:     phone,
		UserID:    "4242",
		Username:  "someone",
		Status:    status,
	}
}

func (s *PostgresStoreSuite) TestAppendAndListByRun() {
	runID := uuid.New()

	rec := s.newRecord(runID, "+15551230001", journal.StatusBlockedByPrivacy)
	rec.DMStatus = journal.DMStatusSent
	rec.Note = "free form note"
	s.Require().NoError(s.store.Append(s.ctx, rec))

	records, err := s.store.ListByRun(s.ctx, runID)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(runID, records[0].RunID)
	s.Equal("+15551230001", records[0].Phone)
	s.Equal("4242", records[0].UserID)
	s.Equal("someone", records[0].Username)
	s.Equal(journal.StatusBlockedByPrivacy, records[0].Status)
	s.Equal(journal.DMStatusSent, records[0].DMStatus)
	s.Equal("free form note", records[0].Note)
	s.True(rec.Timestamp.Equal(records[0].Timestamp))
}

func (s *PostgresStoreSuite) TestListByRunPreservesAppendOrder() {
	runID := uuid.New()
	phones := []string{"+15550001", "+15550002", "+15550003"}
	for _, phone := range phones {
		s.Require().NoError(s.store.Append(s.ctx, s.newRecord(runID, phone, journal.StatusAdded)))
	}

	records, err := s.store.ListByRun(s.ctx, runID)
	s.Require().NoError(err)
	s.Require().Len(records, len(phones))
	for i, phone := range phones {
		s.Equal(phone, records[i].Phone)
	}
}

func (s *PostgresStoreSuite) TestRunsStayDistinct() {
	first, second := uuid.New(), uuid.New()
	s.Require().NoError(s.store.Append(s.ctx, s.newRecord(first, "+15550001", journal.StatusAdded)))
	s.Require().NoError(s.store.Append(s.ctx, s.newRecord(second, "+15550002", journal.StatusAdded)))

	records, err := s.store.ListByRun(s.ctx, first)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("+15550001", records[0].Phone)
}

func (s *PostgresStoreSuite) TestEnsureSchemaIdempotent() {
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}
