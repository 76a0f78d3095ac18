package session

import (
	"github.com/mgpereira/registro/internal/common/clock"
	"github.com/mgpereira/registro/internal/common/uuid"
	"github.com/mgpereira/registro/internal/models"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartSessionInput contains parameters for starting a new session
type StartSessionInput struct {
	// Meal is the meal type, "lunch" or "snack"
	Meal string `validate:"required"`

	// ServedItem is the default served-item label; required for snack
	// sessions
	ServedItem string

	// Period is the school period label
	Period string

	// Date is the serving date in DD/MM/YYYY form
	Date string `validate:"required"`

	// Time is the serving time in HH:MM form
	Time string `validate:"required"`

	// Groups holds the eligible group identifiers; a "#" prefix admits
	// walk-ins for that group
	Groups []string `validate:"required,min=1,dive,required"`
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	Session *models.Session
}

// ActivateSessionInput contains parameters for activating a session
type ActivateSessionInput struct {
	SessionID string
}

// ActivateSessionOutput contains the activated session
type ActivateSessionOutput struct {
	Session *models.Session
}

// UpdateGroupsInput contains the replacement eligible-group set
type UpdateGroupsInput struct {
	Groups []string
}

// UpdateGroupsOutput contains the updated session
type UpdateGroupsOutput struct {
	Session *models.Session
}

type GetActiveSessionInput struct {
}

type GetActiveSessionOutput struct {
	Session *models.Session
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

// SaveSnapshotInput contains the snapshot destination
type SaveSnapshotInput struct {
	Path string
}

type SaveSnapshotOutput struct {
	Path string
}

// RestoreSnapshotInput contains the snapshot location
type RestoreSnapshotInput struct {
	Path string
}

// RestoreSnapshotOutput contains the restored session, if any
type RestoreSnapshotOutput struct {
	// Restored indicates a snapshot existed and was applied
	Restored bool

	Session *models.Session
}
