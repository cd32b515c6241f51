package simulation

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a malformed user financial profile.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks invalid market parameters or engine options.
	ErrConfiguration = errors.New("configuration error")
	// ErrCancelled marks a run aborted through its context.
	ErrCancelled = errors.New("simulation cancelled")
	// ErrComputation marks a numeric failure (NaN or Inf) inside a scenario.
	ErrComputation = errors.New("computation error")
)

// FieldError describes a rejected input field. It unwraps to its Kind.
type FieldError struct {
	Kind   error
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s %s", e.Kind, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func validationError(field, format string, args ...any) error {
	return &FieldError{Kind: ErrValidation, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func configurationError(field, format string, args ...any) error {
	return &FieldError{Kind: ErrConfiguration, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// CancelledError is returned when a run is aborted before all batches finished.
// Partial outcomes are discarded.
type CancelledError struct {
	Completed int
	Requested int
	Cause     error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("simulation cancelled after %d of %d scenarios: %v", e.Completed, e.Requested, e.Cause)
}

func (e *CancelledError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCancelled}
	}
	return []error{ErrCancelled, e.Cause}
}
