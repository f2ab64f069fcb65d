// Package session owns the authenticated-user identity on the client: who is
// logged in, the bearer token, and their durable persistence. It is the
// single source of truth every command consults before touching the API.
package session

import (
	"context"

	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

// Views the store navigates to on its state transitions.
const (
	ViewLogin     = "login"
	ViewDashboard = "dashboard"
)

// AuthAPI is the slice of the remote API the session store depends on.
type AuthAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error)
}

// Router abstracts navigation between views. The CLI implementation prints
// the next step; tests record the target.
type Router interface {
	Navigate(view string)
}

// Notifier receives the user-visible transient notifications the store emits
// on its transitions.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

// UserPatch carries the fields UpdateUser merges onto the current user.
// Nil fields are left untouched.
type UserPatch struct {
	Name  *string
	Email *string
	Age   *int
	Role  *models.Role
}
