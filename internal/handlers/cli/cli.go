package cli

import (
	"errors"

	exportService "github.com/mgpereira/registro/internal/services/export"
	registrationService "github.com/mgpereira/registro/internal/services/registration"
	sessionService "github.com/mgpereira/registro/internal/services/session"
	syncService "github.com/mgpereira/registro/internal/services/sync"
)

// Config holds the services the CLI drives
type Config struct {
	SessionService      sessionService.Service
	RegistrationService registrationService.Service
	SyncService         syncService.Service
	ExportService       exportService.Service

	// SnapshotPath is where the active-session snapshot lives
	SnapshotPath string
}

// Handler wires the operator command surface to the core services
type Handler struct {
	sessionService      sessionService.Service
	registrationService registrationService.Service
	syncService         syncService.Service
	exportService       exportService.Service
	snapshotPath        string
}

// New creates a new CLI handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.RegistrationService == nil {
		return nil, errors.New("registration service cannot be nil")
	}

	if cfg.SyncService == nil {
		return nil, errors.New("sync service cannot be nil")
	}

	if cfg.ExportService == nil {
		return nil, errors.New("export service cannot be nil")
	}

	return &Handler{
		sessionService:      cfg.SessionService,
		registrationService: cfg.RegistrationService,
		syncService:         cfg.SyncService,
		exportService:       cfg.ExportService,
		snapshotPath:        cfg.SnapshotPath,
	}, nil
}
