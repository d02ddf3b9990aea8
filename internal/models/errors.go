package models

import "errors"

// Error taxonomy surfaced by repositories and the valuation core.
// Handlers map these to HTTP statuses; nothing here is retried.
var (
	// ErrNotFound means the entry/payment/customer id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a second entry was attempted for the same
	// (customer, date, shift). The existing record is left untouched.
	ErrConflict = errors.New("entry already exists for this customer, date and shift")

	// ErrNoRate means no rate was supplied and none could be resolved
	// from the chart. Entries are never saved with a zero rate.
	ErrNoRate = errors.New("cannot save entry without rate")
)

// ValidationError marks caller-correctable input problems
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a message in a ValidationError
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
