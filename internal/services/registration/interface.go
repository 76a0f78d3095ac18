package registration

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mgpereira/registro/internal/services/registration Service

import "context"

// Service defines the interface for consumption registration
type Service interface {
	// RegisterConsumption records that a student ate during the active
	// session, enforcing at-most-once per (student, session)
	RegisterConsumption(ctx context.Context, input *RegisterConsumptionInput) (*RegisterConsumptionOutput, error)

	// UndoConsumption deletes a consumption record, freeing the student
	// to be registered again (operator correction)
	UndoConsumption(ctx context.Context, input *UndoConsumptionInput) (*UndoConsumptionOutput, error)

	// ListEligible returns the students eligible for the active session,
	// optionally filtered by whether they have already consumed
	ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error)

	// SessionMetrics summarizes consumption counts for the active session
	SessionMetrics(ctx context.Context, input *SessionMetricsInput) (*SessionMetricsOutput, error)
}
