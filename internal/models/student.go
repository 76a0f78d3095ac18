package models

import (
	"time"
)

// Student represents a student known to the cafeteria system
type Student struct {
	// ID is the unique identifier for the student
	ID string

	// Pront is the registration number, unique across the roster
	Pront string

	// Name is the student's display name
	Name string

	// Group is the class/group label the student belongs to
	Group string

	// Active indicates the student is part of the current roster
	Active bool

	// CreatedAt is when the student was first imported
	CreatedAt time.Time

	// UpdatedAt is when the student was last updated by an import
	UpdatedAt time.Time
}
