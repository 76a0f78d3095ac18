package reserve

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mgpereira/registro/internal/repositories/reserve Repository

import (
	"context"

	"github.com/mgpereira/registro/internal/models"
)

// Repository defines the interface for reserve data persistence
type Repository interface {
	// UpsertReserve creates a reserve keyed by (student, date), or
	// updates dish/canceled if one already exists for that key
	UpsertReserve(ctx context.Context, input *UpsertReserveInput) (*UpsertReserveOutput, error)

	// GetReserve retrieves a reserve by ID
	GetReserve(ctx context.Context, input *GetReserveInput) (*models.Reserve, error)

	// GetActiveReserve retrieves the non-canceled reserve for a student
	// on a date, if any
	GetActiveReserve(ctx context.Context, input *GetActiveReserveInput) (*models.Reserve, error)

	// ListReservesByDate retrieves all reserves for a date
	ListReservesByDate(ctx context.Context, input *ListReservesByDateInput) (*ListReservesByDateOutput, error)
}
