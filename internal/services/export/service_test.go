package export

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/mgpereira/registro/internal/models"
	consumptionRepo "github.com/mgpereira/registro/internal/repositories/consumption"
	consumptionMocks "github.com/mgpereira/registro/internal/repositories/consumption/mocks"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
	sessionMocks "github.com/mgpereira/registro/internal/repositories/session/mocks"
	sheetMocks "github.com/mgpereira/registro/internal/repositories/sheet/mocks"
	studentRepo "github.com/mgpereira/registro/internal/repositories/student"
	studentMocks "github.com/mgpereira/registro/internal/repositories/student/mocks"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockSessionRepo     *sessionMocks.MockRepository
	mockStudentRepo     *studentMocks.MockRepository
	mockConsumptionRepo *consumptionMocks.MockRepository
	mockSink            *sheetMocks.MockSink
	exportService       Service
	ctx                 context.Context

	testDir       string
	activeSession *models.Session
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockStudentRepo = studentMocks.NewMockRepository(s.mockCtrl)
	s.mockConsumptionRepo = consumptionMocks.NewMockRepository(s.mockCtrl)
	s.mockSink = sheetMocks.NewMockSink(s.mockCtrl)

	s.ctx = context.Background()
	s.testDir = s.T().TempDir()

	s.activeSession = &models.Session{
		ID:         "session-1",
		Meal:       models.MealLunch,
		ServedItem: "Feijoada",
		Date:       "02/05/2025",
		Time:       "11:30",
		Groups:     []string{"INF-2A"},
		CreatedAt:  time.Date(2025, 5, 2, 11, 30, 0, 0, time.UTC),
	}

	svc, err := New(&Config{
		SessionRepo:     s.mockSessionRepo,
		StudentRepo:     s.mockStudentRepo,
		ConsumptionRepo: s.mockConsumptionRepo,
		Sink:            s.mockSink,
		Dir:             s.testDir,
	})
	s.Require().NoError(err)
	s.exportService = svc
}

func (s *ExportServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) TestExportSession() {
	s.mockSessionRepo.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(s.activeSession, nil)

	s.mockConsumptionRepo.EXPECT().
		ListConsumptionsBySession(s.ctx, &consumptionRepo.ListConsumptionsBySessionInput{
			SessionID: "session-1",
		}).
		Return(&consumptionRepo.ListConsumptionsBySessionOutput{
			Consumptions: []*models.Consumption{
				{
					ID:        "consumption-1",
					SessionID: "session-1",
					StudentID: "student-1",
					Dish:      "Feijoada",
					Time:      "11:45:00",
				},
			},
		}, nil)

	s.mockStudentRepo.EXPECT().
		GetStudent(s.ctx, &studentRepo.GetStudentInput{
			StudentID: "student-1",
		}).
		Return(&models.Student{
			ID:    "student-1",
			Pront: "SP3012345",
			Name:  "Ana Souza",
			Group: "INF-2A",
		}, nil)

	expectedPath := filepath.Join(s.testDir, "Lunch 02-05-2025 11.30.csv")
	expectedRows := []models.ServedRow{
		{
			Pront: "SP3012345",
			Date:  "02/05/2025",
			Name:  "Ana Souza",
			Group: "INF-2A",
			Dish:  "Feijoada",
			Time:  "11:45:00",
		},
	}

	s.mockSink.EXPECT().
		Write(s.ctx, expectedPath, expectedRows).
		Return(expectedPath, nil)

	out, err := s.exportService.ExportSession(s.ctx, &ExportSessionInput{})
	s.Require().NoError(err)
	s.Equal(expectedPath, out.Path)
	s.Equal(1, out.Rows)
}

func (s *ExportServiceTestSuite) TestExportSessionNothingToExport() {
	s.mockSessionRepo.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(s.activeSession, nil)

	s.mockConsumptionRepo.EXPECT().
		ListConsumptionsBySession(s.ctx, gomock.Any()).
		Return(&consumptionRepo.ListConsumptionsBySessionOutput{}, nil)

	_, err := s.exportService.ExportSession(s.ctx, &ExportSessionInput{})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNothingToExport)
}

func (s *ExportServiceTestSuite) TestExportSessionNoActiveSession() {
	s.mockSessionRepo.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrNoActiveSession)

	_, err := s.exportService.ExportSession(s.ctx, &ExportSessionInput{})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNoActiveSession)
}

func (s *ExportServiceTestSuite) TestExportNameForSnackSession() {
	s.activeSession.Meal = models.MealSnack
	s.Equal("Snack 02-05-2025 11.30.csv", exportName(s.activeSession))
}
