// Package storage defines the durable key-value persistence contract for the
// client session. Implementations live in subpackages (boltdb).
package storage

import "context"

// SessionStorage persists the bearer token and the serialized user record
// across process restarts. It is the Go counterpart of the browser's
// origin-scoped local storage.
type SessionStorage interface {
	// SaveSession stores the token and the sanitized user JSON together.
	// Either both values are written or neither is.
	SaveSession(ctx context.Context, token string, user []byte) error

	// Token returns the stored bearer token, or ErrSessionNotFound.
	Token(ctx context.Context) (string, error)

	// User returns the stored user JSON, or ErrSessionNotFound.
	User(ctx context.Context) ([]byte, error)

	// Clear removes every persisted session key. Clearing an already empty
	// store is a no-op, not an error.
	Clear(ctx context.Context) error
}
