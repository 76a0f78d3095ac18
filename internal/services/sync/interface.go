package sync

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mgpereira/registro/internal/services/sync Service

import "context"

// Service defines the interface for bidirectional spreadsheet sync.
// Both directions are idempotent: re-running a partially failed
// operation completes the remainder without duplicating rows.
type Service interface {
	// PullRoster imports students and reserves from the external source
	// into the local store
	PullRoster(ctx context.Context, input *PullRosterInput) (*PullRosterOutput, error)

	// PushServed appends the active session's consumption rows to the
	// remote served sheet, skipping rows already present
	PushServed(ctx context.Context, input *PushServedInput) (*PushServedOutput, error)
}
