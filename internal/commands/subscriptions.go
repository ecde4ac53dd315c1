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

func newSubscriptionsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subs",
		Aliases: []string{"subscriptions"},
		Short:   "List recurring subscriptions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			subs := a.store.Subscriptions()
			if len(subs) == 0 {
				fmt.Fprintln(out, "No subscriptions on file.")
				return nil
			}

			now := a.now()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCATEGORY\tAMOUNT\tNEXT BILLING")
			for _, sub := range subs {
				next := schedule.NextOccurrence(sub.BillingDay, now)
				days := schedule.DaysUntil(next, now)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s (%s)\n",
					sub.Name, sub.Category, a.printer.Currency(sub.Amount),
					format.ShortDate(next), format.DaysLabel(days))
			}
			tw.Flush()

			fmt.Fprintf(out, "\nMonthly total: %s\n", a.printer.Currency(report.MonthlySubscriptionTotal(subs)))
			fmt.Fprintf(out, "Yearly total:  %s\n", a.printer.Currency(report.YearlySubscriptionTotal(subs)))
			return nil
		},
	}

	cmd.AddCommand(newSubscriptionsAddCommand(a))
	return cmd
}

func newSubscriptionsAddCommand(a *app) *cobra.Command {
	var (
		name       string
		amount     string
		billingDay int
		category   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a subscription (in memory for this run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireManage(a); err != nil {
				return err
			}
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amount, err)
			}

			sub := a.store.AddSubscription(model.Subscription{
				Name:       name,
				Amount:     amt,
				BillingDay: billingDay,
				Category:   category,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added subscription %s (%s), billed on day %d\n",
				sub.Name, sub.ID, sub.BillingDay)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "subscription name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&amount, "amount", "0", "monthly amount")
	cmd.Flags().IntVar(&billingDay, "billing-day", 1, "billing day of month (1-31)")
	cmd.Flags().StringVar(&category, "category", "", "category")

	return cmd
}
