package models

import (
	"time"
)

// Consumption represents the recorded fact that a student ate during a
// specific session. At most one consumption may exist per
// (student, session) pair; the record is never updated, only created
// and, for operator corrections, deleted.
type Consumption struct {
	// ID is the unique identifier for the consumption
	ID string

	// SessionID references the session the meal was served in
	SessionID string

	// StudentID references the student who ate
	StudentID string

	// ReserveID references the backing reserve; empty for walk-ins
	ReserveID string

	// Dish is the served-item label adopted at registration time,
	// either the reserve's dish or the session's default
	Dish string

	// Time is the clock time of consumption in HH:MM:SS form
	Time string

	// CreatedAt is the full timestamp of the consumption
	CreatedAt time.Time
}

// WalkIn reports whether the consumption happened without a reserve
func (c *Consumption) WalkIn() bool {
	return c.ReserveID == ""
}
