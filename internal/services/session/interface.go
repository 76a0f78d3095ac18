package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mgpereira/registro/internal/services/session Service

import "context"

// Service defines the interface for serving-session lifecycle operations
type Service interface {
	// StartSession creates a new session and marks it active
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// ActivateSession marks a previously persisted session active,
	// superseding the current one
	ActivateSession(ctx context.Context, input *ActivateSessionInput) (*ActivateSessionOutput, error)

	// UpdateGroups replaces the eligible-group set of the active session
	UpdateGroups(ctx context.Context, input *UpdateGroupsInput) (*UpdateGroupsOutput, error)

	// GetActiveSession returns the active session's attributes
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)

	// ListSessions returns all persisted sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// SaveSnapshot writes the active-session identity to a file so it
	// can be restored after a restart
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error)

	// RestoreSnapshot re-activates the session recorded in a snapshot
	// file, if one exists
	RestoreSnapshot(ctx context.Context, input *RestoreSnapshotInput) (*RestoreSnapshotOutput, error)
}
