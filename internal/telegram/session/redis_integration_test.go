//go:build integration

package session_test

import (
	"context"
	"testing"

	tgsession "github.com/gotd/td/session"
	"github.com/stretchr/testify/suite"

	"grouper/internal/telegram/session"
	"grouper/pkg/testutil/containers"
)

type RedisSessionSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *session.Redis
	ctx   context.Context
}

func TestRedisSessionSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisSessionSuite))
}

func (s *RedisSessionSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.NewRedisContainer(s.T())
	s.store = session.NewRedis(s.redis.Client)
}

func (s *RedisSessionSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisSessionSuite) TestLoadBeforeStoreReportsNotFound() {
	_, err := s.store.LoadSession(s.ctx)
	s.Require().ErrorIs(err, tgsession.ErrNotFound)
}

func (s *RedisSessionSuite) TestStoreLoadRoundTrip() {
	payload := []byte(`{"dc":2,"auth_key":"abc"}`)
	s.Require().NoError(s.store.StoreSession(s.ctx, payload))

	got, err := s.store.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(payload, got)
}

func (s *RedisSessionSuite) TestOverwriteKeepsLatest() {
	s.Require().NoError(s.store.StoreSession(s.ctx, []byte("first")))
	s.Require().NoError(s.store.StoreSession(s.ctx, []byte("second")))

	got, err := s.store.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal([]byte("second"), got)
}

func (s *RedisSessionSuite) TestCustomKeyIsolatesAccounts() {
	other := session.NewRedis(s.redis.Client, session.WithKey("grouper:telegram:session:alt"))

	s.Require().NoError(s.store.StoreSession(s.ctx, []byte("main")))
	s.Require().NoError(other.StoreSession(s.ctx, []byte("alt")))

	got, err := s.store.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal([]byte("main"), got)

	gotOther, err := other.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal([]byte("alt"), gotOther)
}
