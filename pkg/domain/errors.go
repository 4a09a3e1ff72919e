package domain

import "errors"

// ErrLaunchFailed is returned when the test runner process exits unsuccessfully.
var ErrLaunchFailed = errors.New("test runner failed")

// ErrNoFailedSpecs is returned when the failed-specs record is missing.
var ErrNoFailedSpecs = errors.New("failed specs record not found")

// ErrUnsupportedRunner is returned when the configured test runner has no known dialect.
var ErrUnsupportedRunner = errors.New("unsupported test runner")

// RuntimeError is a fatal configuration error reported before any launch attempt.
type RuntimeError struct {
	Message string
	Hint    string
}

func (e *RuntimeError) Error() string {
	if e.Hint == "" {
		return e.Message
	}
	return e.Message + "\nHINT: " + e.Hint
}

// Unwrap allows errors.Is(err, ErrUnsupportedRunner).
func (e *RuntimeError) Unwrap() error {
	return ErrUnsupportedRunner
}
