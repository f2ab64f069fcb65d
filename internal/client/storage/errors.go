package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound is returned when no session value is persisted.
	ErrSessionNotFound = errors.New("session data not found")
)
