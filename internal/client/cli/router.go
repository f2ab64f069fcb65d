package cli

import (
	"github.com/openbiblio/biblio/internal/client/iocli"
	"github.com/openbiblio/biblio/internal/client/session"
)

// termRouter is the terminal stand-in for page navigation: it tells the
// user which command corresponds to the view the session layer moved to.
type termRouter struct {
	io iocli.IO
}

// NewRouter creates a router printing navigation hints through io.
func NewRouter(io iocli.IO) session.Router {
	return &termRouter{io: io}
}

func (r *termRouter) Navigate(view string) {
	switch view {
	case session.ViewLogin:
		r.io.Println("→ Sessão encerrada. Use 'biblio login' para entrar.")
	case session.ViewDashboard:
		r.io.Println("→ Use 'biblio dashboard' para ver o painel.")
	default:
		r.io.Printf("→ %s\n", view)
	}
}
