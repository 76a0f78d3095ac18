package sync

import (
	"time"

	consumptionRepo "github.com/mgpereira/registro/internal/repositories/consumption"
	reserveRepo "github.com/mgpereira/registro/internal/repositories/reserve"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
	"github.com/mgpereira/registro/internal/repositories/sheet"
	studentRepo "github.com/mgpereira/registro/internal/repositories/student"
)

// Config holds configuration for the sync service
type Config struct {
	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	StudentRepo     studentRepo.Repository
	ReserveRepo     reserveRepo.Repository
	ConsumptionRepo consumptionRepo.Repository

	// External collaborators
	Source      sheet.RowSource
	ServedSheet sheet.ServedSheet

	// Timeout bounds each sync operation; zero means no timeout. A
	// timeout surfaces as ErrTransport and the operation is safe to
	// re-invoke.
	Timeout time.Duration
}

type PullRosterInput struct {
}

// PullRosterOutput reports what the pull changed
type PullRosterOutput struct {
	StudentsCreated int
	StudentsUpdated int
	ReservesCreated int
	ReservesUpdated int
}

type PushServedInput struct {
}

// PushServedOutput reports what the push appended
type PushServedOutput struct {
	// RowsAppended is how many rows were new to the remote sheet
	RowsAppended int

	// RowsSkipped is how many rows were already present remotely
	RowsSkipped int
}
