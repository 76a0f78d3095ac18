package export

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mgpereira/registro/internal/services/export Service

import "context"

// Service defines the interface for session export
type Service interface {
	// ExportSession writes the active session's consumption rows to a
	// file and returns the path written
	ExportSession(ctx context.Context, input *ExportSessionInput) (*ExportSessionOutput, error)
}
