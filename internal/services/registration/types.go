package registration

import (
	"github.com/mgpereira/registro/internal/common/clock"
	"github.com/mgpereira/registro/internal/common/uuid"
	consumptionRepo "github.com/mgpereira/registro/internal/repositories/consumption"
	reserveRepo "github.com/mgpereira/registro/internal/repositories/reserve"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
	studentRepo "github.com/mgpereira/registro/internal/repositories/student"
)

// Config holds configuration for the registration service
type Config struct {
	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	StudentRepo     studentRepo.Repository
	ReserveRepo     reserveRepo.Repository
	ConsumptionRepo consumptionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// RegisterConsumptionInput contains parameters for registering a
// consumption
type RegisterConsumptionInput struct {
	// Pront is the student's registration number
	Pront string
}

// RegisterConsumptionOutput contains the display fields of the recorded
// consumption, for caller feedback
type RegisterConsumptionOutput struct {
	ConsumptionID string
	Pront         string
	Name          string
	Group         string
	Dish          string
	Time          string

	// WalkIn indicates the consumption has no backing reserve
	WalkIn bool
}

// UndoConsumptionInput identifies the consumption to delete
type UndoConsumptionInput struct {
	ConsumptionID string
}

type UndoConsumptionOutput struct {
}

// ListEligibleInput contains the optional consumed filter. A nil
// Consumed returns the full eligible set.
type ListEligibleInput struct {
	Consumed *bool
}

// EligibleStudent is one row of the eligibility listing
type EligibleStudent struct {
	Pront string
	Name  string
	Group string

	// Dish is the reserve's dish when one exists, otherwise the
	// session's default served item
	Dish string

	// HasReserve indicates a non-canceled reserve backs the eligibility
	HasReserve bool

	// Consumed indicates a consumption is already recorded
	Consumed bool

	// ConsumptionID and Time are set when Consumed is true
	ConsumptionID string
	Time          string
}

type ListEligibleOutput struct {
	Students []*EligibleStudent
}

type SessionMetricsInput struct {
}

// SessionMetricsOutput summarizes the active session
type SessionMetricsOutput struct {
	// Eligible is the total number of students eligible for the session
	Eligible int

	// Consumed is how many of them have a recorded consumption
	Consumed int

	// WalkIns is how many recorded consumptions have no backing reserve
	WalkIns int

	// Remaining is Eligible minus Consumed
	Remaining int
}
