package export

import (
	consumptionRepo "github.com/mgpereira/registro/internal/repositories/consumption"
	sessionRepo "github.com/mgpereira/registro/internal/repositories/session"
	"github.com/mgpereira/registro/internal/repositories/sheet"
	studentRepo "github.com/mgpereira/registro/internal/repositories/student"
)

// Config holds configuration for the export service
type Config struct {
	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	StudentRepo     studentRepo.Repository
	ConsumptionRepo consumptionRepo.Repository

	// Sink receives the exported rows
	Sink sheet.Sink

	// Dir is the directory exported files are written into
	Dir string
}

type ExportSessionInput struct {
}

// ExportSessionOutput contains the path of the written file
type ExportSessionOutput struct {
	Path string

	// Rows is how many consumption rows were written
	Rows int
}
