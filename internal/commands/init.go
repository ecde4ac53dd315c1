package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/config"
	"github.com/kasa-dev/kasa/internal/store"
)

func newInitCommand(_ *app) *cobra.Command {
	var name string
	var currentUser string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a kasa config and starter household file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, currentUser)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "household name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currentUser, "current-user", "u1", "member ID acting by default")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, currentUser string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default(name)
	cfg.Household.CurrentUser = currentUser
	if err := config.Save(filepath.Join(dir, defaultConfigFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Starter data is the demo household; edit it down to taste.
	dataPath := filepath.Join(dir, defaultDataFile)
	if _, err := os.Stat(dataPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", dataPath)
	}
	if err := os.WriteFile(dataPath, store.SeedYAML(), 0o644); err != nil {
		return fmt.Errorf("writing starter household: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized kasa household %q at %s\n", name, dir)
	return nil
}
