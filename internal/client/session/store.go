package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openbiblio/biblio/internal/client/storage"
	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

var (
	// ErrBusy is returned when a login or register is started while another
	// one is still in flight.
	ErrBusy = errors.New("authentication already in progress")

	// ErrInvalidCredentialsResponse is returned when the API accepts the
	// credentials but the response is missing the token or the user record.
	ErrInvalidCredentialsResponse = errors.New("invalid credentials response")

	// ErrNotAuthenticated is returned by Require when no user is present.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// A stringified undefined value ends up persisted when a buggy writer saves
// a missing record; treat it the same as corrupt data.
const literalUndefined = "undefined"

// Store holds the session state. All mutation happens on the calling
// goroutine after each API call resolves; the loading flag is the only
// coordination mechanism.
type Store struct {
	api      AuthAPI
	storage  storage.SessionStorage
	router   Router
	notifier Notifier

	user    *models.User
	token   string
	loading bool
}

// New creates a session store. The store starts empty and loading until
// Initialize has run.
func New(api AuthAPI, st storage.SessionStorage, router Router, notifier Notifier) *Store {
	return &Store{
		api:      api,
		storage:  st,
		router:   router,
		notifier: notifier,
		loading:  true,
	}
}

// Initialize rehydrates the session from persisted state. It fails closed:
// a missing token, a missing or unparsable user record, the literal
// "undefined", or a record lacking name/email/role all discard both
// persisted values and leave the store logged out. It never returns an
// error and always clears the loading flag.
func (s *Store) Initialize(ctx context.Context) {
	defer func() { s.loading = false }()

	token, err := s.storage.Token(ctx)
	if err != nil || token == "" || token == literalUndefined {
		s.discard(ctx)
		return
	}

	raw, err := s.storage.User(ctx)
	if err != nil || len(raw) == 0 || string(raw) == literalUndefined {
		s.discard(ctx)
		return
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil || !user.IsComplete() {
		s.discard(ctx)
		return
	}

	s.user = &user
	s.token = token
}

// discard drops any persisted session state. Corrupt state is recovered
// silently; the user just ends up logged out.
func (s *Store) discard(ctx context.Context) {
	if err := s.storage.Clear(ctx); err != nil {
		slog.Warn("failed to clear persisted session", "error", err)
	}
	s.user = nil
	s.token = ""
}

// Login authenticates against the remote API. On validated success it
// persists the token and the sanitized user record, emits a success
// notification and navigates to the dashboard. On failure it notifies and
// re-raises the error so the caller can react as well.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	defer func() { s.loading = false }()

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.notifier.Error("Erro ao fazer login", failureMessage(err, "Ocorreu um erro ao tentar fazer login."))
		return err
	}

	if err := s.adopt(ctx, resp); err != nil {
		s.notifier.Error("Erro ao fazer login", failureMessage(err, "Ocorreu um erro ao tentar fazer login."))
		return err
	}

	s.notifier.Success("Login realizado com sucesso", fmt.Sprintf("Bem-vindo, %s!", s.user.Name))
	s.router.Navigate(ViewDashboard)
	return nil
}

// Register creates an account and logs the new user in. The contract shape
// matches Login: persist on validated success, notify and re-raise on
// failure, always reset loading.
func (s *Store) Register(ctx context.Context, profile pkgapi.RegisterRequest) error {
	if profile.Name == "" || profile.Email == "" || profile.Password == "" {
		return fmt.Errorf("name, email and password are required")
	}
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	defer func() { s.loading = false }()

	resp, err := s.api.Register(ctx, profile)
	if err != nil {
		s.notifier.Error("Erro ao registrar", failureMessage(err, "Ocorreu um erro ao tentar registrar."))
		return err
	}

	if err := s.adopt(ctx, resp); err != nil {
		s.notifier.Error("Erro ao registrar", failureMessage(err, "Ocorreu um erro ao tentar registrar."))
		return err
	}

	s.notifier.Success("Registro realizado com sucesso", "Sua conta foi criada e você já está logado.")
	s.router.Navigate(ViewDashboard)
	return nil
}

// adopt validates an auth response and makes it the current session. The
// typed user record carries no password field, so the persisted JSON is
// sanitized by construction. Nothing is persisted on a failed validation.
func (s *Store) adopt(ctx context.Context, resp *pkgapi.AuthResponse) error {
	if resp == nil || resp.Token == "" || !resp.User.IsComplete() {
		return ErrInvalidCredentialsResponse
	}

	raw, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}
	if err := s.storage.SaveSession(ctx, resp.Token, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	user := resp.User
	s.user = &user
	s.token = resp.Token
	return nil
}

// Logout clears the session, persisted and in-memory, navigates to the
// login view and notifies. Safe to call when already logged out.
func (s *Store) Logout(ctx context.Context) {
	s.discard(ctx)
	s.router.Navigate(ViewLogin)
	s.notifier.Success("Logout realizado", "Você foi desconectado com sucesso.")
}

// HandleUnauthorized is the clear-and-redirect path wired to the HTTP
// client's 401 interceptor. Same state transition as Logout, without the
// notification.
func (s *Store) HandleUnauthorized(ctx context.Context) {
	s.discard(ctx)
	s.router.Navigate(ViewLogin)
}

// UpdateUser merges the patch onto the current user and re-persists the
// record. Local-only: the remote PUT is the caller's responsibility before
// calling this. No-op when nobody is logged in.
func (s *Store) UpdateUser(ctx context.Context, patch UserPatch) {
	if s.user == nil {
		return
	}

	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.Age != nil {
		s.user.Age = *patch.Age
	}
	if patch.Role != nil {
		s.user.Role = *patch.Role
	}

	raw, err := json.Marshal(s.user)
	if err != nil {
		slog.Warn("failed to serialize updated user", "error", err)
		return
	}
	if err := s.storage.SaveSession(ctx, s.token, raw); err != nil {
		slog.Warn("failed to re-persist updated user", "error", err)
	}
}

// Require navigates to the login view and returns ErrNotAuthenticated when
// no user is present. Protected commands call it before doing anything.
func (s *Store) Require() error {
	if s.user == nil {
		s.router.Navigate(ViewLogin)
		return ErrNotAuthenticated
	}
	return nil
}

// IsAuthenticated reports whether a user is present.
func (s *Store) IsAuthenticated() bool { return s.user != nil }

// IsAdmin reports whether the current user holds the ADMIN role.
func (s *Store) IsAdmin() bool { return s.user != nil && s.user.IsAdmin() }

// Loading reports whether rehydration or an auth call is in flight.
func (s *Store) Loading() bool { return s.loading }

// Token returns the current bearer token, empty when logged out. Wired as
// the HTTP client's token source.
func (s *Store) Token() string { return s.token }

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// failureMessage prefers the collaborator's message, falling back to the
// generic one.
func failureMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	if errors.Is(err, ErrInvalidCredentialsResponse) {
		return fallback
	}
	return err.Error()
}
