package sync

// SyncError is a custom error type for sync errors
type SyncError string

// Error implements the error interface
func (e SyncError) Error() string {
	return string(e)
}

// Define errors. ErrTransport covers any failure talking to the external
// source or sheet; committed rows are never rolled back, so the caller
// simply retries the whole operation.
const (
	ErrTransport       SyncError = "transport failure"
	ErrNoActiveSession SyncError = "no active session"
	ErrNilConfig       SyncError = "config cannot be nil"
	ErrNilSessionRepo  SyncError = "session repository cannot be nil"
	ErrNilStudentRepo  SyncError = "student repository cannot be nil"
	ErrNilReserveRepo  SyncError = "reserve repository cannot be nil"
	ErrNilConsumption  SyncError = "consumption repository cannot be nil"
	ErrNilSource       SyncError = "row source cannot be nil"
	ErrNilServedSheet  SyncError = "served sheet cannot be nil"
)
