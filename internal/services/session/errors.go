package session

// SessionError is a custom error type for session-management errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidSessionSpec SessionError = "invalid session spec"
	ErrSessionNotFound    SessionError = "session not found"
	ErrNoActiveSession    SessionError = "no active session"
	ErrNilConfig          SessionError = "config cannot be nil"
	ErrNilSessionRepo     SessionError = "session repository cannot be nil"
	ErrNilClock           SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator   SessionError = "UUID generator cannot be nil"
)
