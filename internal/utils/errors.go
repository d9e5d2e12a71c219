package utils

import (
	"errors"
	"fmt"
)

/*
   Sentinel errors for the booking domain.
   Controllers branch with: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrNotFound           = errors.New("not_found")
	ErrBookingConflict    = errors.New("booking_conflict")
	ErrInvalidTransition  = errors.New("invalid_status_transition")
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrLastAdmin          = errors.New("last_admin")

	// Submission-time availability enforcement (config-gated).
	ErrDatesUnavailable = errors.New("dates_unavailable")
)

/*
   ValidationError identifies the exact field that failed so the caller
   can render a field-level message rather than a generic failure.
*/
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
