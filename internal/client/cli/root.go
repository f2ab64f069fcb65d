package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the biblio command tree.
func NewRootCommand(c *Cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "biblio",
		Short:         "Terminal client for the community library",
		Long:          "biblio manages the community library through its remote API: catalog, loans, users and your own session.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(c),
		newRegisterCmd(c),
		newLogoutCmd(c),
		newStatusCmd(c),
		newProfileCmd(c),
		newBooksCmd(c),
		newLoansCmd(c),
		newUsersCmd(c),
		newDashboardCmd(c),
	)

	return root
}
