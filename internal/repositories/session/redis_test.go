package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mgpereira/registro/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 5, 2, 11, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newSession(id string, createdAt time.Time) *models.Session {
	return &models.Session{
		ID:         id,
		Meal:       models.MealLunch,
		ServedItem: "Feijoada",
		Period:     "Integral",
		Date:       "02/05/2025",
		Time:       "11:30",
		Groups:     []string{"INF-2A", "#MEC-1A"},
		CreatedAt:  createdAt,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	sess := s.newSession("session-1", s.testNow)

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)
	s.Equal(models.MealLunch, retrieved.Meal)
	s.Equal("Feijoada", retrieved.ServedItem)
	s.Equal("02/05/2025", retrieved.Date)
	s.Equal([]string{"INF-2A", "#MEC-1A"}, retrieved.Groups)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestListSessionsOrdered() {
	// Save out of order; the list comes back in creation order
	second := s.newSession("session-2", s.testNow.Add(time.Hour))
	first := s.newSession("session-1", s.testNow)

	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: second}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: first}))

	out, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 2)
	s.Equal("session-1", out.Sessions[0].ID)
	s.Equal("session-2", out.Sessions[1].ID)
}

func (s *RedisRepositoryTestSuite) TestActiveSessionLifecycle() {
	// No active session initially
	_, err := s.repo.GetActiveSession(context.Background(), &GetActiveSessionInput{})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNoActiveSession)

	sess := s.newSession("session-1", s.testNow)
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess}))

	err = s.repo.SetActiveSession(context.Background(), &SetActiveSessionInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)

	active, err := s.repo.GetActiveSession(context.Background(), &GetActiveSessionInput{})
	s.Require().NoError(err)
	s.Equal("session-1", active.ID)

	err = s.repo.ClearActiveSession(context.Background(), &ClearActiveSessionInput{})
	s.Require().NoError(err)

	_, err = s.repo.GetActiveSession(context.Background(), &GetActiveSessionInput{})
	s.ErrorIs(err, ErrNoActiveSession)
}

func (s *RedisRepositoryTestSuite) TestSetActiveSessionSupersedes() {
	first := s.newSession("session-1", s.testNow)
	second := s.newSession("session-2", s.testNow.Add(time.Hour))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: first}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: second}))

	s.Require().NoError(s.repo.SetActiveSession(context.Background(), &SetActiveSessionInput{SessionID: "session-1"}))
	s.Require().NoError(s.repo.SetActiveSession(context.Background(), &SetActiveSessionInput{SessionID: "session-2"}))

	active, err := s.repo.GetActiveSession(context.Background(), &GetActiveSessionInput{})
	s.Require().NoError(err)
	s.Equal("session-2", active.ID)
}

func (s *RedisRepositoryTestSuite) TestSetActiveSessionUnknownID() {
	err := s.repo.SetActiveSession(context.Background(), &SetActiveSessionInput{
		SessionID: "missing",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}
