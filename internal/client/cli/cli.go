// Package cli wires the terminal commands over the session store, the API
// client and the table viewer.
package cli

import (
	"fmt"
	"io"

	"github.com/openbiblio/biblio/internal/client/api"
	"github.com/openbiblio/biblio/internal/client/config"
	"github.com/openbiblio/biblio/internal/client/iocli"
	"github.com/openbiblio/biblio/internal/client/notify"
	"github.com/openbiblio/biblio/internal/client/session"
)

// Cli bundles the collaborators every command needs.
type Cli struct {
	io      iocli.IO
	out     io.Writer
	api     *api.Client
	session *session.Store
	router  session.Router
	toasts  *notify.Queue
	cfg     *config.Config
}

// New creates the command context. out receives table output; prompts go
// through io.
func New(io iocli.IO, out io.Writer, apiClient *api.Client, store *session.Store, router session.Router, toasts *notify.Queue, cfg *config.Config) *Cli {
	return &Cli{
		io:      io,
		out:     out,
		api:     apiClient,
		session: store,
		router:  router,
		toasts:  toasts,
		cfg:     cfg,
	}
}

// requireAuth redirects to the login view and fails when nobody is logged
// in. Every protected command calls it first.
func (c *Cli) requireAuth() error {
	if err := c.session.Require(); err != nil {
		return fmt.Errorf("not authenticated. Run 'biblio login' first")
	}
	return nil
}

// requireAdmin additionally demands the ADMIN role, sending non-admins back
// to the dashboard.
func (c *Cli) requireAdmin() error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if !c.session.IsAdmin() {
		c.router.Navigate(session.ViewDashboard)
		return fmt.Errorf("this command requires the ADMIN role")
	}
	return nil
}
