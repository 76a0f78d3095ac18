package consumption

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mgpereira/registro/internal/repositories/consumption Repository

import (
	"context"

	"github.com/mgpereira/registro/internal/models"
)

// Repository defines the interface for consumption data persistence.
// Creation is guarded so that at most one consumption exists per
// (student, session) pair, even under concurrent callers.
type Repository interface {
	// CreateConsumption persists a consumption; a second create for the
	// same (student, session) pair fails with ErrAlreadyConsumed
	CreateConsumption(ctx context.Context, input *CreateConsumptionInput) error

	// GetConsumption retrieves a consumption by ID
	GetConsumption(ctx context.Context, input *GetConsumptionInput) (*models.Consumption, error)

	// GetSessionConsumption retrieves the consumption recorded for a
	// student within a session, if any
	GetSessionConsumption(ctx context.Context, input *GetSessionConsumptionInput) (*models.Consumption, error)

	// DeleteConsumption removes a consumption and frees its uniqueness
	// slot so the student may be registered again
	DeleteConsumption(ctx context.Context, input *DeleteConsumptionInput) error

	// ListConsumptionsBySession retrieves all consumptions for a session
	// in registration order
	ListConsumptionsBySession(ctx context.Context, input *ListConsumptionsBySessionInput) (*ListConsumptionsBySessionOutput, error)
}
