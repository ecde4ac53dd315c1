package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:     "kasa",
		Short:   "Household finance dashboard",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	rootCmd.PersistentFlags().StringVar(&app.cfgPath, "config", "", "path to kasa.yaml (default ./kasa.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&app.dataPath, "data", "", "path to a household YAML file (default embedded demo data)")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(app),
		newDashboardCommand(app),
		newAccountsCommand(app),
		newCardsCommand(app),
		newLoansCommand(app),
		newSubscriptionsCommand(app),
		newTransactionsCommand(app),
		newPaymentsCommand(app),
		newUsersCommand(app),
	)

	return rootCmd
}
