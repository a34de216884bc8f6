package store

import "errors"

// Sentinel errors for the two failure modes callers are expected to
// branch on. Everything else (I/O, corruption, driver failures) is
// wrapped and surfaced untouched.
var (
	// ErrNotFound is returned when a referenced question or set does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a create-only insert loses a race on a
	// unique constraint.
	ErrConflict = errors.New("unique constraint conflict")
)
