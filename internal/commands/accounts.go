package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/model"
	"github.com/kasa-dev/kasa/internal/report"
)

func newAccountsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List asset accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			accounts := a.store.Accounts()
			if len(accounts) == 0 {
				fmt.Fprintln(out, "No accounts on file.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tBALANCE")
			for _, acc := range accounts {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", acc.Name, acc.Type, a.printer.Currency(acc.Balance))
			}
			tw.Flush()

			fmt.Fprintf(out, "\nTotal assets: %s\n", a.printer.Currency(report.TotalAssets(accounts)))
			return nil
		},
	}

	cmd.AddCommand(newAccountsAddCommand(a))
	return cmd
}

func newAccountsAddCommand(a *app) *cobra.Command {
	var (
		name        string
		accountType string
		balance     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an asset account (in memory for this run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireManage(a); err != nil {
				return err
			}
			bal, err := decimal.NewFromString(balance)
			if err != nil {
				return fmt.Errorf("parsing --balance %q: %w", balance, err)
			}
			t := model.AccountType(accountType)
			if t != model.AccountTypeCash && t != model.AccountTypeBank {
				return fmt.Errorf("unknown account type %q (cash or bank)", accountType)
			}

			acc := a.store.AddAccount(model.AssetAccount{Name: name, Type: t, Balance: bal})
			fmt.Fprintf(cmd.OutOrStdout(), "Added account %s (%s) with balance %s\n",
				acc.Name, acc.ID, a.printer.Currency(acc.Balance))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&accountType, "type", string(model.AccountTypeBank), "account type: cash or bank")
	cmd.Flags().StringVar(&balance, "balance", "0", "opening balance")

	return cmd
}
