package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      SessionRepository
}

func TestSessionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}

func (s *SessionRepositoryTestSuite) SetupSuite() {
	var err error
	s.miniRedis, err = miniredis.Run()
	require.NoError(s.T(), err)

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	s.repo = NewSessionRepository(s.client)
}

func (s *SessionRepositoryTestSuite) SetupTest() {
	s.miniRedis.FlushAll()
}

func (s *SessionRepositoryTestSuite) TearDownSuite() {
	s.client.Close()
	s.miniRedis.Close()
}

func (s *SessionRepositoryTestSuite) TestSaveAndExists() {
	ctx := context.Background()

	err := s.repo.Save(ctx, "session-1", time.Hour)
	s.NoError(err)

	active, err := s.repo.Exists(ctx, "session-1")
	s.NoError(err)
	s.True(active)
}

func (s *SessionRepositoryTestSuite) TestExists_Unknown() {
	ctx := context.Background()

	active, err := s.repo.Exists(ctx, "no-such-session")
	s.NoError(err)
	s.False(active)
}

func (s *SessionRepositoryTestSuite) TestDelete() {
	ctx := context.Background()

	err := s.repo.Save(ctx, "session-1", time.Hour)
	s.NoError(err)

	err = s.repo.Delete(ctx, "session-1")
	s.NoError(err)

	active, err := s.repo.Exists(ctx, "session-1")
	s.NoError(err)
	s.False(active)
}

func (s *SessionRepositoryTestSuite) TestDelete_UnknownIsNoop() {
	ctx := context.Background()

	err := s.repo.Delete(ctx, "no-such-session")
	s.NoError(err)
}

func (s *SessionRepositoryTestSuite) TestExpiry() {
	ctx := context.Background()

	err := s.repo.Save(ctx, "session-1", time.Minute)
	s.NoError(err)

	s.miniRedis.FastForward(2 * time.Minute)

	active, err := s.repo.Exists(ctx, "session-1")
	s.NoError(err)
	s.False(active)
}

func (s *SessionRepositoryTestSuite) TestSave_NonPositiveTTL() {
	ctx := context.Background()

	err := s.repo.Save(ctx, "session-1", 0)
	s.Error(err)
}
