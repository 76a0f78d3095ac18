package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/mgpereira/registro/internal/common/clock/mocks"
	uuidMocks "github.com/mgpereira/registro/internal/common/uuid/mocks"
	"github.com/mgpereira/registro/internal/models"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
	sessionMocks "github.com/mgpereira/registro/internal/repositories/session/mocks"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *mocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	sessionService  Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testSessionID string

	// Reusable test fixtures
	expectedSession *models.Session

	// Reusable test inputs
	startSessionInput *StartSessionInput
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 5, 2, 11, 30, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"

	s.expectedSession = &models.Session{
		ID:         s.testSessionID,
		Meal:       models.MealLunch,
		ServedItem: "Feijoada",
		Period:     "Integral",
		Date:       "02/05/2025",
		Time:       "11:30",
		Groups:     []string{"INF-2A", "#MEC-1A"},
		CreatedAt:  s.testTime,
	}

	s.startSessionInput = &StartSessionInput{
		Meal:       "lunch",
		ServedItem: "Feijoada",
		Period:     "Integral",
		Date:       "02/05/2025",
		Time:       "11:30",
		Groups:     []string{"INF-2A", "#MEC-1A"},
	}

	svc, err := New(&Config{
		SessionRepo:   s.mockSessionRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.sessionService = svc
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.ErrorIs(err, ErrNilSessionRepo)
}

func (s *SessionServiceTestSuite) TestStartSession() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(s.testSessionID, input.Session.ID)
			s.Equal(models.MealLunch, input.Session.Meal)
			s.Equal([]string{"INF-2A", "#MEC-1A"}, input.Session.Groups)
			return nil
		})

	s.mockSessionRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{
			SessionID: s.testSessionID,
		}).
		Return(nil)

	out, err := s.sessionService.StartSession(s.ctx, s.startSessionInput)
	s.Require().NoError(err)
	s.Equal(s.testSessionID, out.Session.ID)
	s.Equal(s.testTime, out.Session.CreatedAt)
}

func (s *SessionServiceTestSuite) TestStartSessionMissingFields() {
	_, err := s.sessionService.StartSession(s.ctx, &StartSessionInput{
		Meal: "lunch",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidSessionSpec)
}

func (s *SessionServiceTestSuite) TestStartSessionUnknownMeal() {
	input := *s.startSessionInput
	input.Meal = "dinner"

	_, err := s.sessionService.StartSession(s.ctx, &input)
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidSessionSpec)
}

func (s *SessionServiceTestSuite) TestStartSessionSnackRequiresItem() {
	input := *s.startSessionInput
	input.Meal = "snack"
	input.ServedItem = ""

	_, err := s.sessionService.StartSession(s.ctx, &input)
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidSessionSpec)
}

func (s *SessionServiceTestSuite) TestStartSessionBadDate() {
	input := *s.startSessionInput
	input.Date = "2025-05-02"

	_, err := s.sessionService.StartSession(s.ctx, &input)
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidSessionSpec)
}

func (s *SessionServiceTestSuite) TestStartSessionEmptyGroups() {
	input := *s.startSessionInput
	input.Groups = nil

	_, err := s.sessionService.StartSession(s.ctx, &input)
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidSessionSpec)
}

func (s *SessionServiceTestSuite) TestActivateSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{
			SessionID: s.testSessionID,
		}).
		Return(s.expectedSession, nil)

	s.mockSessionRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{
			SessionID: s.testSessionID,
		}).
		Return(nil)

	out, err := s.sessionService.ActivateSession(s.ctx, &ActivateSessionInput{
		SessionID: s.testSessionID,
	})
	s.Require().NoError(err)
	s.Equal(s.expectedSession, out.Session)
}

func (s *SessionServiceTestSuite) TestActivateSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.sessionService.ActivateSession(s.ctx, &ActivateSessionInput{
		SessionID: "missing",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestUpdateGroups() {
	s.mockSessionRepo.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil)

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal([]string{"#QUI-3B"}, input.Session.Groups)
			return nil
		})

	out, err := s.sessionService.UpdateGroups(s.ctx, &UpdateGroupsInput{
		Groups: []string{"#QUI-3B"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"#QUI-3B"}, out.Session.Groups)
}

func (s *SessionServiceTestSuite) TestUpdateGroupsEmpty() {
	_, err := s.sessionService.UpdateGroups(s.ctx, &UpdateGroupsInput{})
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidSessionSpec)
}

func (s *SessionServiceTestSuite) TestUpdateGroupsNoActiveSession() {
	s.mockSessionRepo.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrNoActiveSession)

	_, err := s.sessionService.UpdateGroups(s.ctx, &UpdateGroupsInput{
		Groups: []string{"INF-2A"},
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNoActiveSession)
}

func (s *SessionServiceTestSuite) TestGetActiveSession() {
	s.mockSessionRepo.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil)

	out, err := s.sessionService.GetActiveSession(s.ctx, &GetActiveSessionInput{})
	s.Require().NoError(err)
	s.Equal(s.expectedSession, out.Session)
}

func (s *SessionServiceTestSuite) TestListSessions() {
	s.mockSessionRepo.EXPECT().
		ListSessions(s.ctx, gomock.Any()).
		Return(&sessionRepo.ListSessionsOutput{
			Sessions: []*models.Session{s.expectedSession},
		}, nil)

	out, err := s.sessionService.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal(s.testSessionID, out.Sessions[0].ID)
}

func (s *SessionServiceTestSuite) TestSaveSnapshot() {
	path := filepath.Join(s.T().TempDir(), "session.json")

	s.mockSessionRepo.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	out, err := s.sessionService.SaveSnapshot(s.ctx, &SaveSnapshotInput{
		Path: path,
	})
	s.Require().NoError(err)
	s.Equal(path, out.Path)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)

	var snap snapshot
	s.Require().NoError(json.Unmarshal(data, &snap))
	s.Equal(s.testSessionID, snap.SessionID)
}

func (s *SessionServiceTestSuite) TestRestoreSnapshot() {
	path := filepath.Join(s.T().TempDir(), "session.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{"session_id":"test-session-id"}`), 0o644))

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{
			SessionID: s.testSessionID,
		}).
		Return(s.expectedSession, nil)

	s.mockSessionRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{
			SessionID: s.testSessionID,
		}).
		Return(nil)

	out, err := s.sessionService.RestoreSnapshot(s.ctx, &RestoreSnapshotInput{
		Path: path,
	})
	s.Require().NoError(err)
	s.True(out.Restored)
	s.Equal(s.expectedSession, out.Session)
}

func (s *SessionServiceTestSuite) TestRestoreSnapshotMissingFile() {
	out, err := s.sessionService.RestoreSnapshot(s.ctx, &RestoreSnapshotInput{
		Path: filepath.Join(s.T().TempDir(), "missing.json"),
	})
	s.Require().NoError(err)
	s.False(out.Restored)
	s.Nil(out.Session)
}
