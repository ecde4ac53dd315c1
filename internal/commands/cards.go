package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/format"
	"github.com/kasa-dev/kasa/internal/model"
	"github.com/kasa-dev/kasa/internal/report"
	"github.com/kasa-dev/kasa/internal/schedule"
)

func newCardsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List credit cards and their utilization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			cards := a.store.Cards()
			if len(cards) == 0 {
				fmt.Fprintln(out, "No credit cards on file.")
				return nil
			}

			now := a.now()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDEBT\tLIMIT\tUSED\tAVAILABLE\tMIN PAYMENT\tSTATEMENT")
			for _, card := range cards {
				cutoff := schedule.NextOccurrence(card.CutoffDay, now)
				days := schedule.DaysUntil(cutoff, now)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\t%s\t%s (%s)\n",
					card.Name,
					a.printer.Currency(card.CurrentDebt),
					a.printer.Currency(card.TotalLimit),
					report.UtilizationPercent(card),
					a.printer.Currency(card.Available()),
					a.printer.Currency(card.MinPayment()),
					format.ShortDate(cutoff), format.DaysLabel(days))
			}
			tw.Flush()

			fmt.Fprintf(out, "\nTotal card debt: %s\n", a.printer.Currency(report.TotalCardDebt(cards)))
			fmt.Fprintf(out, "Total minimum payment: %s\n", a.printer.Currency(report.TotalMinPayment(cards)))
			return nil
		},
	}

	cmd.AddCommand(newCardsAddCommand(a))
	return cmd
}

func newCardsAddCommand(a *app) *cobra.Command {
	var (
		name      string
		limit     string
		debt      string
		cutoffDay int
		minRatio  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a credit card (in memory for this run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireManage(a); err != nil {
				return err
			}
			totalLimit, err := decimal.NewFromString(limit)
			if err != nil {
				return fmt.Errorf("parsing --limit %q: %w", limit, err)
			}
			currentDebt, err := decimal.NewFromString(debt)
			if err != nil {
				return fmt.Errorf("parsing --debt %q: %w", debt, err)
			}
			ratio, err := decimal.NewFromString(minRatio)
			if err != nil {
				return fmt.Errorf("parsing --min-ratio %q: %w", minRatio, err)
			}

			card := a.store.AddCard(model.CreditCard{
				Name:            name,
				TotalLimit:      totalLimit,
				CurrentDebt:     currentDebt,
				CutoffDay:       cutoffDay,
				MinPaymentRatio: ratio,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added card %s (%s), cutoff day %d\n",
				card.Name, card.ID, card.CutoffDay)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "card name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&limit, "limit", "0", "total credit limit")
	cmd.Flags().StringVar(&debt, "debt", "0", "current debt")
	cmd.Flags().IntVar(&cutoffDay, "cutoff-day", 1, "statement cutoff day of month (1-31)")
	cmd.Flags().StringVar(&minRatio, "min-ratio", "20", "minimum payment ratio in percent")

	return cmd
}
