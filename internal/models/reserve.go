package models

import (
	"time"
)

// Reserve represents a pre-registered intent for a student to eat a
// specific dish or snack on a given date
type Reserve struct {
	// ID is the unique identifier for the reserve
	ID string

	// StudentID references the student who holds the reserve
	StudentID string

	// Date is the serving date in DD/MM/YYYY form
	Date string

	// Dish is the reserved dish or snack label
	Dish string

	// Snacks indicates a snack reserve rather than a lunch reserve
	Snacks bool

	// Canceled marks the reserve as no longer valid; canceled reserves
	// are kept, never deleted
	Canceled bool

	// CreatedAt is when the reserve was first imported
	CreatedAt time.Time

	// UpdatedAt is when the reserve was last updated by a re-import
	UpdatedAt time.Time
}
