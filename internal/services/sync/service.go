package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mgpereira/registro/internal/models"
	consumptionRepo "github.com/mgpereira/registro/internal/repositories/consumption"
	reserveRepo "github.com/mgpereira/registro/internal/repositories/reserve"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
	"github.com/mgpereira/registro/internal/repositories/sheet"
	studentRepo "github.com/mgpereira/registro/internal/repositories/student"
)

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	studentRepo     studentRepo.Repository
	reserveRepo     reserveRepo.Repository
	consumptionRepo consumptionRepo.Repository
	source          sheet.RowSource
	servedSheet     sheet.ServedSheet
	timeout         time.Duration
}

// New creates a new sync service
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

	if cfg.ReserveRepo == nil {
		return nil, ErrNilReserveRepo
	}

	if cfg.ConsumptionRepo == nil {
		return nil, ErrNilConsumption
	}

	if cfg.Source == nil {
		return nil, ErrNilSource
	}

	if cfg.ServedSheet == nil {
		return nil, ErrNilServedSheet
	}

	return &service{
		sessionRepo:     cfg.SessionRepo,
		studentRepo:     cfg.StudentRepo,
		reserveRepo:     cfg.ReserveRepo,
		consumptionRepo: cfg.ConsumptionRepo,
		source:          cfg.Source,
		servedSheet:     cfg.ServedSheet,
		timeout:         cfg.Timeout,
	}, nil
}

// withTimeout bounds a sync operation when a timeout is configured
func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// PullRoster imports students and reserves from the external source.
// Each upsert commits independently; a failure partway leaves the rows
// already applied in place, and re-running completes the remainder.
func (s *service) PullRoster(ctx context.Context, input *PullRosterInput) (*PullRosterOutput, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out := &PullRosterOutput{}

	studentRows, err := s.source.FetchStudentRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching students: %v", ErrTransport, err)
	}

	for _, row := range studentRows {
		res, err := s.studentRepo.UpsertStudent(ctx, &studentRepo.UpsertStudentInput{
			Pront: row.Pront,
			Name:  row.Name,
			Group: row.Group,
		})
		if err != nil {
			return out, fmt.Errorf("failed to upsert student %s: %w", row.Pront, err)
		}
		if res.Created {
			out.StudentsCreated++
		} else {
			out.StudentsUpdated++
		}
	}

	reserveRows, err := s.source.FetchReserveRows(ctx)
	if err != nil {
		return out, fmt.Errorf("%w: fetching reserves: %v", ErrTransport, err)
	}

	for _, row := range reserveRows {
		stu, err := s.studentRepo.GetStudentByPront(ctx, &studentRepo.GetStudentByProntInput{
			Pront: row.Pront,
		})
		if err != nil {
			if !errors.Is(err, studentRepo.ErrStudentNotFound) {
				return out, fmt.Errorf("failed to get student %s: %w", row.Pront, err)
			}
			// Reserve rows may reference students missing from the
			// roster sheet; create them from the reserve row itself
			created, err := s.studentRepo.UpsertStudent(ctx, &studentRepo.UpsertStudentInput{
				Pront: row.Pront,
				Name:  row.Name,
				Group: row.Group,
			})
			if err != nil {
				return out, fmt.Errorf("failed to upsert student %s: %w", row.Pront, err)
			}
			stu = created.Student
			out.StudentsCreated++
		}

		res, err := s.reserveRepo.UpsertReserve(ctx, &reserveRepo.UpsertReserveInput{
			StudentID: stu.ID,
			Date:      row.Date,
			Dish:      row.Dish,
			Snacks:    row.Snacks,
			Canceled:  row.Canceled,
		})
		if err != nil {
			return out, fmt.Errorf("failed to upsert reserve for %s: %w", row.Pront, err)
		}
		if res.Created {
			out.ReservesCreated++
		} else {
			out.ReservesUpdated++
		}
	}

	return out, nil
}

// PushServed appends the active session's consumption rows to the remote
// served sheet. Presence is decided by comparing full row tuples against
// everything already on the sheet, so repeated pushes never duplicate
// rows and a crashed push is corrected by re-running.
func (s *service) PushServed(ctx context.Context, input *PushServedInput) (*PushServedOutput, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

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

	existing, err := s.servedSheet.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading served sheet: %v", ErrTransport, err)
	}

	present := make(map[models.ServedRow]struct{}, len(existing))
	for _, row := range existing {
		present[row] = struct{}{}
	}

	out := &PushServedOutput{}
	toAppend := make([]models.ServedRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := present[row]; ok {
			out.RowsSkipped++
			continue
		}
		toAppend = append(toAppend, row)
		// Guard against identical tuples within one batch as well
		present[row] = struct{}{}
	}

	if len(toAppend) > 0 {
		if err := s.servedSheet.AppendRows(ctx, toAppend); err != nil {
			return out, fmt.Errorf("%w: appending rows: %v", ErrTransport, err)
		}
	}
	out.RowsAppended = len(toAppend)

	return out, nil
}
