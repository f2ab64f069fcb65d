package cli

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/openbiblio/biblio/internal/models"
)

func newStatusCmd(c *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus()
		},
	}
}

func (c *Cli) runStatus() error {
	user := c.session.User()
	if user == nil {
		c.io.Println("Não autenticado. Use 'biblio login' para entrar.")
		return nil
	}

	c.io.Printf("Usuário: %s <%s>\n", user.Name, user.Email)
	c.io.Printf("Perfil:  %s\n", models.RoleLabels[user.Role])
	c.io.Printf("Idade:   %d\n", user.Age)

	if exp, ok := tokenExpiry(c.session.Token()); ok {
		if time.Now().After(exp) {
			c.io.Printf("Token:   expirado em %s\n", exp.Format(time.RFC3339))
		} else {
			c.io.Printf("Token:   válido até %s\n", exp.Format(time.RFC3339))
		}
	}

	return nil
}

// tokenExpiry decodes the bearer without verifying it; the signature check
// belongs to the server. Claims are display-only here.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
