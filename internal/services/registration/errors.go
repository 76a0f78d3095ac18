package registration

// RegistrationError is a custom error type for registration errors
type RegistrationError string

// Error implements the error interface
func (e RegistrationError) Error() string {
	return string(e)
}

// Define errors. ErrAlreadyConsumed is an expected, frequent condition
// (double-click, duplicate scan) and callers are expected to branch on
// it rather than treat it as a failure.
const (
	ErrNoActiveSession     RegistrationError = "no active session"
	ErrStudentNotFound     RegistrationError = "student not found"
	ErrStudentNotEligible  RegistrationError = "student not eligible for session"
	ErrAlreadyConsumed     RegistrationError = "consumption already registered"
	ErrConsumptionNotFound RegistrationError = "consumption not found"
	ErrNilConfig           RegistrationError = "config cannot be nil"
	ErrNilSessionRepo      RegistrationError = "session repository cannot be nil"
	ErrNilStudentRepo      RegistrationError = "student repository cannot be nil"
	ErrNilReserveRepo      RegistrationError = "reserve repository cannot be nil"
	ErrNilConsumptionRepo  RegistrationError = "consumption repository cannot be nil"
	ErrNilClock            RegistrationError = "clock cannot be nil"
	ErrNilUUIDGenerator    RegistrationError = "UUID generator cannot be nil"
)
