package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mgpereira/registro/internal/common/clock"
	"github.com/mgpereira/registro/internal/common/uuid"
	"github.com/mgpereira/registro/internal/models"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	validate      *validator.Validate
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		validate:      validator.New(),
	}, nil
}

// StartSession creates a new session and marks it active
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionSpec, err)
	}

	meal := models.MealType(input.Meal)
	if !meal.Valid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidSessionSpec, input.Meal)
	}

	if meal == models.MealSnack && input.ServedItem == "" {
		return nil, fmt.Errorf("%w: snack sessions require a served item", ErrInvalidSessionSpec)
	}

	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidSessionSpec, input.Date)
	}

	if _, err := time.Parse(models.TimeLayout, input.Time); err != nil {
		return nil, fmt.Errorf("%w: bad time %q", ErrInvalidSessionSpec, input.Time)
	}

	sess := &models.Session{
		ID:         s.uuidGenerator.NewUUID(),
		Meal:       meal,
		ServedItem: input.ServedItem,
		Period:     input.Period,
		Date:       input.Date,
		Time:       input.Time,
		Groups:     append([]string{}, input.Groups...),
		CreatedAt:  s.clock.Now(),
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.sessionRepo.SetActiveSession(ctx, &sessionRepo.SetActiveSessionInput{
		SessionID: sess.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to activate session: %w", err)
	}

	return &StartSessionOutput{
		Session: sess,
	}, nil
}

// ActivateSession marks a previously persisted session active
func (s *service) ActivateSession(ctx context.Context, input *ActivateSessionInput) (*ActivateSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := s.sessionRepo.SetActiveSession(ctx, &sessionRepo.SetActiveSessionInput{
		SessionID: sess.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to activate session: %w", err)
	}

	return &ActivateSessionOutput{
		Session: sess,
	}, nil
}

// UpdateGroups replaces the eligible-group set of the active session
func (s *service) UpdateGroups(ctx context.Context, input *UpdateGroupsInput) (*UpdateGroupsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Groups) == 0 {
		return nil, fmt.Errorf("%w: group list cannot be empty", ErrInvalidSessionSpec)
	}

	sess, err := s.activeSession(ctx)
	if err != nil {
		return nil, err
	}

	sess.Groups = append([]string{}, input.Groups...)

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &UpdateGroupsOutput{
		Session: sess,
	}, nil
}

// GetActiveSession returns the active session's attributes
func (s *service) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	sess, err := s.activeSession(ctx)
	if err != nil {
		return nil, err
	}

	return &GetActiveSessionOutput{
		Session: sess,
	}, nil
}

// ListSessions returns all persisted sessions
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &ListSessionsOutput{
		Sessions: out.Sessions,
	}, nil
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
