package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbiblio/biblio/internal/client/table"
	"github.com/openbiblio/biblio/internal/models"
)

func newLoansCmd(c *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage loans",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLoansList(cmd)
		},
	}

	checkout := &cobra.Command{
		Use:   "checkout <bookID> <userID>",
		Short: "Check a book out to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLoansCheckout(cmd, args[0], args[1])
		},
	}

	ret := &cobra.Command{
		Use:   "return <id>",
		Short: "Register the return of a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLoansReturn(cmd, args[0])
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLoansCancel(cmd, args[0])
		},
	}

	cmd.AddCommand(list, checkout, ret, cancel)
	return cmd
}

func loanColumns() []table.Column[models.Loan] {
	return []table.Column[models.Loan]{
		{Key: "id", Header: "ID", Cell: func(l models.Loan) string { return l.ID }},
		{Key: "livro", Header: "Livro", Cell: func(l models.Loan) string { return l.Book.Title }},
		{Key: "usuario", Header: "Usuário", Cell: func(l models.Loan) string { return l.User.Name }},
		{Key: "locacao", Header: "Locação", Cell: func(l models.Loan) string { return l.LoanedAt }},
		{Key: "devolucao", Header: "Devolução", Cell: func(l models.Loan) string {
			if l.ReturnedAt == nil {
				return "-"
			}
			return *l.ReturnedAt
		}},
		{Key: "status", Header: "Status", Cell: func(l models.Loan) string { return models.LoanStatusLabels[l.Status] }},
	}
}

func (c *Cli) runLoansList(cmd *cobra.Command) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	loans, err := c.api.ListLoans(cmd.Context())
	if err != nil {
		c.toasts.Error("Erro ao carregar locações", "Não foi possível carregar as locações.")
		return err
	}

	model := table.New(loanColumns())
	model.SetData(loans)
	model.Render(c.out)
	return nil
}

func (c *Cli) runLoansCheckout(cmd *cobra.Command, bookID, userID string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	loan, err := c.api.CreateLoan(cmd.Context(), bookID, userID)
	if err != nil {
		c.toasts.Error("Erro ao criar locação", "Não foi possível criar a locação.")
		return err
	}

	c.toasts.Success("Locação criada", fmt.Sprintf("%q locado para %s.", loan.Book.Title, loan.User.Name))
	return nil
}

func (c *Cli) runLoansReturn(cmd *cobra.Command, id string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	loan, err := c.api.ReturnLoan(cmd.Context(), id)
	if err != nil {
		c.toasts.Error("Erro ao devolver", "Não foi possível registrar a devolução.")
		return err
	}

	c.toasts.Success("Devolução registrada", fmt.Sprintf("%q foi devolvido.", loan.Book.Title))
	return nil
}

func (c *Cli) runLoansCancel(cmd *cobra.Command, id string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	loan, err := c.api.CancelLoan(cmd.Context(), id)
	if err != nil {
		c.toasts.Error("Erro ao cancelar", "Não foi possível cancelar a locação.")
		return err
	}

	c.toasts.Success("Locação cancelada", fmt.Sprintf("A locação de %q foi cancelada.", loan.Book.Title))
	return nil
}
