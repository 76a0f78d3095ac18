package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mgpereira/registro/internal/repositories/session Repository

import (
	"context"

	"github.com/mgpereira/registro/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// SaveSession persists a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions retrieves all persisted sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// SetActiveSession points the single active-session slot at the
	// given session, superseding any previous one
	SetActiveSession(ctx context.Context, input *SetActiveSessionInput) error

	// GetActiveSession retrieves the currently active session
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*models.Session, error)

	// ClearActiveSession empties the active-session slot
	ClearActiveSession(ctx context.Context, input *ClearActiveSessionInput) error
}
