package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a report, pilot, activity or tour
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a report transition loses the race:
	// the report is no longer in the state the transition requires.
	ErrConflict = errors.New("report already decided")

	// ErrInsufficientFunds is returned when a debit would push the
	// balance negative. The balance is untouched.
	ErrInsufficientFunds = errors.New("insufficient credits")
)

// ValidationError reports the first failing constraint of a submitted
// report. It is safe to surface to the pilot.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
