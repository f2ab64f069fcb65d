package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/openbiblio/biblio/internal/client/table"
	"github.com/openbiblio/biblio/internal/models"
	pkgapi "github.com/openbiblio/biblio/pkg/api"
)

// watchInterval is how often --watch refreshes the dashboard.
const watchInterval = 30 * time.Second

func newDashboardCmd(c *Cli) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show library totals and statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDashboard(cmd.Context(), watch)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "refresh every 30s until interrupted")
	return cmd
}

// runDashboard renders the stats once, then (with --watch) keeps
// refreshing on a ticker until the context is cancelled. The ticker stops
// on return, so no timer leaks past the command.
func (c *Cli) runDashboard(ctx context.Context, watch bool) error {
	if err := c.requireAuth(); err != nil {
		return err
	}

	if err := c.renderDashboard(ctx); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := c.renderDashboard(ctx); err != nil {
				// A failed refresh is transient; keep watching.
				c.toasts.Error("Erro ao atualizar painel", "Não foi possível atualizar os dados do painel.")
			}
		}
	}
}

func (c *Cli) renderDashboard(ctx context.Context) error {
	books, err := c.api.ListBooks(ctx)
	if err != nil {
		return err
	}

	available := 0
	for _, b := range books {
		if b.AvailableForLoan {
			available++
		}
	}

	activeLoans, err := c.api.ActiveLoanCount(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Total de livros:      %d\n", len(books))
	c.io.Printf("Livros disponíveis:   %d\n", available)
	c.io.Printf("Locações ativas:      %d\n", activeLoans)

	if c.session.IsAdmin() {
		users, err := c.api.ListUsers(ctx, 0, 1)
		if err != nil {
			return err
		}
		c.io.Printf("Total de usuários:    %d\n", users.Pageable.TotalElements)
	}

	genres, err := c.api.GenreStats(ctx)
	if err != nil {
		return err
	}
	c.io.Println("\nLivros por gênero:")
	genreTable := table.New([]table.Column[pkgapi.GenreStat]{
		{Key: "genero", Header: "Gênero", Cell: func(s pkgapi.GenreStat) string { return models.GenreLabels[s.Genre] }},
		{Key: "quantidade", Header: "Quantidade", Cell: func(s pkgapi.GenreStat) string { return strconv.Itoa(s.Count) }},
	})
	genreTable.SetData(genres)
	genreTable.Render(c.out)

	conditions, err := c.api.ConditionStats(ctx)
	if err != nil {
		return err
	}
	c.io.Println("\nLivros por conservação:")
	conditionTable := table.New([]table.Column[pkgapi.ConditionStat]{
		{Key: "estado", Header: "Estado", Cell: func(s pkgapi.ConditionStat) string { return models.ConditionLabels[s.Name] }},
		{Key: "quantidade", Header: "Quantidade", Cell: func(s pkgapi.ConditionStat) string { return strconv.Itoa(s.Count) }},
	})
	conditionTable.SetData(conditions)
	conditionTable.Render(c.out)

	return nil
}
