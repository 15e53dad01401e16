package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the periodicx library

var (
	// ErrInvalidConfiguration indicates invalid construction parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAlreadyRunning indicates that Run or Start was called on an
	// executor whose scheduling loop has already been started
	ErrAlreadyRunning = errors.New("executor already running")
)

// ValidationError describes a configuration value that was rejected at
// construction time. It unwraps to ErrInvalidConfiguration so callers
// can match the whole class with errors.Is.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}
