package registration

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/mgpereira/registro/internal/common/clock"
	"github.com/mgpereira/registro/internal/common/uuid"
	"github.com/mgpereira/registro/internal/models"
	consumptionRepo "github.com/mgpereira/registro/internal/repositories/consumption"
	reserveRepo "github.com/mgpereira/registro/internal/repositories/reserve"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
	studentRepo "github.com/mgpereira/registro/internal/repositories/student"
)

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	studentRepo     studentRepo.Repository
	reserveRepo     reserveRepo.Repository
	consumptionRepo consumptionRepo.Repository
	clock           clock.Clock
	uuidGenerator   uuid.UUID
}

// New creates a new registration service
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
		return nil, ErrNilConsumptionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:     cfg.SessionRepo,
		studentRepo:     cfg.StudentRepo,
		reserveRepo:     cfg.ReserveRepo,
		consumptionRepo: cfg.ConsumptionRepo,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
	}, nil
}

// RegisterConsumption records that a student ate during the active
// session. Uniqueness is enforced by the consumption repository's
// storage-level guard, so two racing calls for the same student resolve
// to one success and one ErrAlreadyConsumed.
func (s *service) RegisterConsumption(ctx context.Context, input *RegisterConsumptionInput) (*RegisterConsumptionOutput, error) {
	if input == nil || input.Pront == "" {
		return nil, errors.New("input and pront cannot be empty")
	}

	sess, err := s.activeSession(ctx)
	if err != nil {
		return nil, err
	}

	stu, err := s.studentRepo.GetStudentByPront(ctx, &studentRepo.GetStudentByProntInput{
		Pront: input.Pront,
	})
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	rule, eligible := sess.RuleFor(stu.Group)
	if !eligible {
		return nil, ErrStudentNotEligible
	}

	res, err := s.reserveRepo.GetActiveReserve(ctx, &reserveRepo.GetActiveReserveInput{
		StudentID: stu.ID,
		Date:      sess.Date,
		Snacks:    sess.Meal == models.MealSnack,
	})
	if err != nil && !errors.Is(err, reserveRepo.ErrReserveNotFound) {
		return nil, fmt.Errorf("failed to get reserve: %w", err)
	}

	reserveID := ""
	dish := sess.ServedItem
	if res != nil {
		reserveID = res.ID
		dish = res.Dish
	} else if !rule.AllowWalkIn {
		// The group admits reservation holders only
		return nil, ErrStudentNotEligible
	}

	now := s.clock.Now()
	c := &models.Consumption{
		ID:        s.uuidGenerator.NewUUID(),
		SessionID: sess.ID,
		StudentID: stu.ID,
		ReserveID: reserveID,
		Dish:      dish,
		Time:      now.Format(models.ClockLayout),
		CreatedAt: now,
	}

	if err := s.consumptionRepo.CreateConsumption(ctx, &consumptionRepo.CreateConsumptionInput{
		Consumption: c,
	}); err != nil {
		if errors.Is(err, consumptionRepo.ErrAlreadyConsumed) {
			return nil, ErrAlreadyConsumed
		}
		return nil, fmt.Errorf("failed to create consumption: %w", err)
	}

	return &RegisterConsumptionOutput{
		ConsumptionID: c.ID,
		Pront:         stu.Pront,
		Name:          stu.Name,
		Group:         stu.Group,
		Dish:          c.Dish,
		Time:          c.Time,
		WalkIn:        c.WalkIn(),
	}, nil
}

// UndoConsumption deletes a consumption record
func (s *service) UndoConsumption(ctx context.Context, input *UndoConsumptionInput) (*UndoConsumptionOutput, error) {
	if input == nil || input.ConsumptionID == "" {
		return nil, errors.New("input and consumption ID cannot be empty")
	}

	if err := s.consumptionRepo.DeleteConsumption(ctx, &consumptionRepo.DeleteConsumptionInput{
		ConsumptionID: input.ConsumptionID,
	}); err != nil {
		if errors.Is(err, consumptionRepo.ErrConsumptionNotFound) {
			return nil, ErrConsumptionNotFound
		}
		return nil, fmt.Errorf("failed to delete consumption: %w", err)
	}

	return &UndoConsumptionOutput{}, nil
}

// ListEligible returns the students eligible for the active session,
// optionally filtered by consumed state. The consumed=true and
// consumed=false listings partition the eligible set exactly.
func (s *service) ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error) {
	if input == nil {
		input = &ListEligibleInput{}
	}

	sess, err := s.activeSession(ctx)
	if err != nil {
		return nil, err
	}

	rules := sess.GroupRules()
	groupNames := make([]string, 0, len(rules))
	for _, rule := range rules {
		groupNames = append(groupNames, rule.Name)
	}

	candidates, err := s.studentRepo.ListStudentsByGroups(ctx, &studentRepo.ListStudentsByGroupsInput{
		Groups: groupNames,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := make([]*EligibleStudent, 0, len(candidates.Students))
	for _, stu := range candidates.Students {
		if !stu.Active {
			continue
		}

		rule, ok := sess.RuleFor(stu.Group)
		if !ok {
			continue
		}

		res, err := s.reserveRepo.GetActiveReserve(ctx, &reserveRepo.GetActiveReserveInput{
			StudentID: stu.ID,
			Date:      sess.Date,
			Snacks:    sess.Meal == models.MealSnack,
		})
		if err != nil && !errors.Is(err, reserveRepo.ErrReserveNotFound) {
			return nil, fmt.Errorf("failed to get reserve: %w", err)
		}

		if res == nil && !rule.AllowWalkIn {
			continue
		}

		entry := &EligibleStudent{
			Pront: stu.Pront,
			Name:  stu.Name,
			Group: stu.Group,
			Dish:  sess.ServedItem,
		}
		if res != nil {
			entry.Dish = res.Dish
			entry.HasReserve = true
		}

		c, err := s.consumptionRepo.GetSessionConsumption(ctx, &consumptionRepo.GetSessionConsumptionInput{
			SessionID: sess.ID,
			StudentID: stu.ID,
		})
		if err != nil && !errors.Is(err, consumptionRepo.ErrConsumptionNotFound) {
			return nil, fmt.Errorf("failed to get consumption: %w", err)
		}
		if c != nil {
			entry.Consumed = true
			entry.ConsumptionID = c.ID
			entry.Time = c.Time
			// The listing reflects what was actually served
			entry.Dish = c.Dish
		}

		if input.Consumed != nil && entry.Consumed != *input.Consumed {
			continue
		}

		students = append(students, entry)
	}

	sort.Slice(students, func(i, j int) bool {
		return students[i].Name < students[j].Name
	})

	return &ListEligibleOutput{
		Students: students,
	}, nil
}

// SessionMetrics summarizes consumption counts for the active session
func (s *service) SessionMetrics(ctx context.Context, input *SessionMetricsInput) (*SessionMetricsOutput, error) {
	out, err := s.ListEligible(ctx, &ListEligibleInput{})
	if err != nil {
		return nil, err
	}

	metrics := &SessionMetricsOutput{
		Eligible: len(out.Students),
	}
	for _, stu := range out.Students {
		if stu.Consumed {
			metrics.Consumed++
			if !stu.HasReserve {
				metrics.WalkIns++
			}
		}
	}
	metrics.Remaining = metrics.Eligible - metrics.Consumed

	return metrics, nil
}

// activeSession resolves the active session, mapping the repository
// sentinel to the service one
func (s *service) activeSession(ctx context.Context) (*models.Session, error) {
	sess, err := s.sessionRepo.GetActiveSession(ctx, &sessionRepo.GetActiveSessionInput{})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNoActiveSession) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return sess, nil
}
