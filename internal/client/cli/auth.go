package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openbiblio/biblio/internal/validation"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

func newLoginCmd(c *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the library API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogin(cmd)
		},
	}
}

func (c *Cli) runLogin(cmd *cobra.Command) error {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Senha: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	return c.session.Login(cmd.Context(), email, password)
}

func newRegisterCmd(c *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegister(cmd)
		},
	}
}

func (c *Cli) runRegister(cmd *cobra.Command) error {
	name, err := c.io.ReadInput("Nome: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if err := validation.ValidateName(name); err != nil {
		return err
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	ageInput, err := c.io.ReadInput("Idade: ")
	if err != nil {
		return fmt.Errorf("failed to read age: %w", err)
	}
	age, err := strconv.Atoi(ageInput)
	if err != nil {
		return fmt.Errorf("age must be a number")
	}
	if err := validation.ValidateAge(age); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Senha: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	return c.session.Register(cmd.Context(), pkgapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Age:      age,
	})
}

func newLogoutCmd(c *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.session.Logout(cmd.Context())
			return nil
		},
	}
}
