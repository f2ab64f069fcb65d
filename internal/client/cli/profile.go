package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbiblio/biblio/internal/client/session"
	"github.com/openbiblio/biblio/internal/models"
	"github.com/openbiblio/biblio/internal/validation"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

func newProfileCmd(c *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProfileShow()
		},
	}

	var name string
	var age int

	update := &cobra.Command{
		Use:   "update",
		Short: "Update name and age of the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProfileUpdate(cmd, name, age)
		},
	}
	update.Flags().StringVar(&name, "name", "", "new display name")
	update.Flags().IntVar(&age, "age", 0, "new age")

	cmd.AddCommand(update)
	return cmd
}

func (c *Cli) runProfileShow() error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	user := c.session.User()
	c.io.Printf("Nome:   %s\n", user.Name)
	c.io.Printf("Email:  %s\n", user.Email)
	c.io.Printf("Idade:  %d\n", user.Age)
	c.io.Printf("Perfil: %s\n", models.RoleLabels[user.Role])
	return nil
}

// runProfileUpdate persists the edit remotely first, then merges it into
// the local session so the next command sees the new values.
func (c *Cli) runProfileUpdate(cmd *cobra.Command, name string, age int) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if name == "" && age == 0 {
		return fmt.Errorf("nothing to update: pass --name and/or --age")
	}

	req := pkgapi.UserUpdateRequest{}
	patch := session.UserPatch{}
	if name != "" {
		if err := validation.ValidateName(name); err != nil {
			return err
		}
		req.Name = &name
		patch.Name = &name
	}
	if age != 0 {
		if err := validation.ValidateAge(age); err != nil {
			return err
		}
		req.Age = &age
		patch.Age = &age
	}

	user := c.session.User()
	if _, err := c.api.UpdateUser(cmd.Context(), user.ID, req); err != nil {
		c.toasts.Error("Erro ao atualizar perfil", "Não foi possível atualizar as informações do seu perfil.")
		return err
	}

	c.session.UpdateUser(cmd.Context(), patch)
	c.toasts.Success("Perfil atualizado", "As alterações foram salvas com sucesso.")
	return nil
}
