// Package errors provides centralized error handling for bidclock.
//
// Sentinel errors categorize the failures that can cross a package boundary.
// The timing and bidding core never returns errors; only the configuration
// and command layers do. All types can be checked with errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
package errors

import "errors"

// Sentinel errors for error categorization.
var (
	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidGame indicates an invalid game setting (match time,
	// rounds, bids, exponent or chip denomination).
	ErrConfigInvalidGame = errors.New("invalid game configuration")

	// ErrConfigInvalidTimer indicates an invalid timer setting.
	ErrConfigInvalidTimer = errors.New("invalid timer configuration")

	// ErrConfigInvalidNotifications indicates an invalid notifications setting.
	ErrConfigInvalidNotifications = errors.New("invalid notifications configuration")

	// ErrConfigExists indicates an attempt to write a config file that already exists.
	ErrConfigExists = errors.New("config file already exists")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInteractiveRequired indicates that a terminal is required but not available.
	ErrInteractiveRequired = errors.New("interactive terminal required")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrConfigLocked indicates another process is writing the config file.
	ErrConfigLocked = errors.New("config file is locked")

	// ErrClockNotReady indicates the match clock has no finish timestamp yet.
	ErrClockNotReady = errors.New("match clock not ready")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
