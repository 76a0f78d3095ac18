package export

// ExportError is a custom error type for export errors
type ExportError string

// Error implements the error interface
func (e ExportError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveSession ExportError = "no active session"
	ErrNothingToExport ExportError = "no consumptions to export"
	ErrNilConfig       ExportError = "config cannot be nil"
	ErrNilSessionRepo  ExportError = "session repository cannot be nil"
	ErrNilStudentRepo  ExportError = "student repository cannot be nil"
	ErrNilConsumption  ExportError = "consumption repository cannot be nil"
	ErrNilSink         ExportError = "sink cannot be nil"
)
