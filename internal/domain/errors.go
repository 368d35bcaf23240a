package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrGatewayUnavailable = errors.New("account service unavailable")
	ErrInvalidTransition  = errors.New("invalid session transition")
	ErrBusy               = errors.New("a request is already in flight")
	ErrInvalidInput       = errors.New("invalid input")
)

// ValidationError reports the first missing or invalid field of a
// Preferences record. It unwraps to ErrInvalidInput so callers can
// treat all malformed input uniformly.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid preferences: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
