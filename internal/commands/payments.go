package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/format"
	"github.com/kasa-dev/kasa/internal/model"
	"github.com/kasa-dev/kasa/internal/payments"
	"github.com/kasa-dev/kasa/internal/schedule"
)

func newPaymentsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "payments",
		Short: "List payments due within the alert window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			upcoming := payments.Upcoming(a.store.Cards(), a.store.Loans(), a.store.Subscriptions(), a.now(), a.cfg.Alerts.WindowDays)
			payments.SortByDueDate(upcoming)
			if len(upcoming) == 0 {
				fmt.Fprintf(out, "No payments due in the next %d days.\n", a.cfg.Alerts.WindowDays)
				return nil
			}
			renderUpcoming(a, out, upcoming)
			return nil
		},
	}
}

// renderUpcoming prints an already-sorted upcoming-payments list. Shared
// by the payments command and the dashboard.
func renderUpcoming(a *app, out io.Writer, upcoming []model.UpcomingPayment) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	now := a.now()
	for _, p := range upcoming {
		days := schedule.DaysUntil(p.DueDate, now)
		marker := " "
		switch payments.Classify(days, a.cfg.Alerts.UrgentDays, a.cfg.Alerts.WarningDays) {
		case payments.SeverityUrgent:
			marker = "!"
		case payments.SeverityWarning:
			marker = "*"
		}
		fmt.Fprintf(tw, "  %s %s\t%s\t%s\t%s\t%s\n",
			marker, format.ShortDate(p.DueDate), p.Name, paymentTypeLabel(p.Type),
			a.printer.Currency(p.Amount), format.DaysLabel(days))
	}
	tw.Flush()
}

func paymentTypeLabel(t model.PaymentSource) string {
	switch t {
	case model.PaymentCreditCard:
		return "card"
	case model.PaymentLoan:
		return "loan"
	case model.PaymentSubscription:
		return "subscription"
	}
	return string(t)
}
