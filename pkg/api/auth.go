// Package api holds the wire types exchanged with the remote library API.
package api

import "github.com/openbiblio/biblio/internal/models"

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// RegisterRequest is the body of POST /api/auth/registro.
type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Age      int    `json:"idade"`
}

// AuthResponse is returned by both login and registration. Token is the
// opaque bearer credential attached to every subsequent request.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"usuario"`
}

// ErrorResponse is the error envelope the API uses on non-2xx statuses.
type ErrorResponse struct {
	Message string `json:"message"`
}
