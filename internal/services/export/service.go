package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpereira/registro/internal/models"
	consumptionRepo "github.com/mgpereira/registro/internal/repositories/consumption"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
	"github.com/mgpereira/registro/internal/repositories/sheet"
	studentRepo "github.com/mgpereira/registro/internal/repositories/student"
)

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	studentRepo     studentRepo.Repository
	consumptionRepo consumptionRepo.Repository
	sink            sheet.Sink
	dir             string
}

// New creates a new export service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.StudentRepo == nil {
		return nil, ErrNilStudentRepo
	}

	if cfg.ConsumptionRepo == nil {
		return nil, ErrNilConsumption
	}

	if cfg.Sink == nil {
		return nil, ErrNilSink
	}

	return &service{
		sessionRepo:     cfg.SessionRepo,
		studentRepo:     cfg.StudentRepo,
		consumptionRepo: cfg.ConsumptionRepo,
		sink:            cfg.Sink,
		dir:             cfg.Dir,
	}, nil
}

// ExportSession writes the active session's consumption rows to a file
// named after the session, returning the final path
func (s *service) ExportSession(ctx context.Context, input *ExportSessionInput) (*ExportSessionOutput, error) {
	sess, err := s.sessionRepo.GetActiveSession(ctx, &sessionRepo.GetActiveSessionInput{})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNoActiveSession) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}

	consumptions, err := s.consumptionRepo.ListConsumptionsBySession(ctx, &consumptionRepo.ListConsumptionsBySessionInput{
		SessionID: sess.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list consumptions: %w", err)
	}

	if len(consumptions.Consumptions) == 0 {
		return nil, ErrNothingToExport
	}

	rows := make([]models.ServedRow, 0, len(consumptions.Consumptions))
	for _, c := range consumptions.Consumptions {
		stu, err := s.studentRepo.GetStudent(ctx, &studentRepo.GetStudentInput{
			StudentID: c.StudentID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get student %s: %w", c.StudentID, err)
		}
		rows = append(rows, models.NewServedRow(sess, stu, c))
	}

	path, err := s.sink.Write(ctx, filepath.Join(s.dir, exportName(sess)), rows)
	if err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}

	return &ExportSessionOutput{
		Path: path,
		Rows: len(rows),
	}, nil
}

// exportName builds a filesystem-safe file name from the session
func exportName(sess *models.Session) string {
	meal := strings.ToUpper(string(sess.Meal)[:1]) + string(sess.Meal)[1:]
	date := strings.ReplaceAll(sess.Date, "/", "-")
	hour := strings.ReplaceAll(sess.Time, ":", ".")
	return fmt.Sprintf("%s %s %s.csv", meal, date, hour)
}
