package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, duplicate application
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOwnership means the acting HR account does not own the job or event it
	// tried to mutate. Never a silent no-op: the caller always learns.
	ErrOwnership = errors.New("actor does not own the target resource")

	// ErrInvalidStatus means the requested application status is not one of the
	// defined enum values, or the active transition validator refused the move.
	ErrInvalidStatus = errors.New("invalid application status")

	// ErrSchedule covers malformed or past interview dates/times.
	ErrSchedule = errors.New("invalid schedule")
)
