package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/format"
	"github.com/kasa-dev/kasa/internal/payments"
	"github.com/kasa-dev/kasa/internal/report"
	"github.com/kasa-dev/kasa/internal/schedule"
)

func newDashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the household financial summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(a, cmd.OutOrStdout())
		},
	}
}

func runDashboard(a *app, out io.Writer) error {
	s := a.store
	user := a.currentUser()
	if user.Name != "" {
		fmt.Fprintf(out, "Hello, %s\n\n", firstName(user.Name))
	}

	netWorth := report.NetWorth(s.Accounts(), s.Cards(), s.Loans())
	totalAssets := report.TotalAssets(s.Accounts())
	cardDebt := report.TotalCardDebt(s.Cards())
	loanDebt := report.TotalLoanDebt(s.Loans())

	fmt.Fprintf(out, "Net worth       %s\n", a.printer.Currency(netWorth))
	fmt.Fprintf(out, "Total assets    %s  (%d accounts)\n", a.printer.Currency(totalAssets), len(s.Accounts()))
	fmt.Fprintf(out, "Card debt       %s  (%d cards)\n", a.printer.Currency(cardDebt), len(s.Cards()))
	fmt.Fprintf(out, "Loan debt       %s  (%d loans)\n", a.printer.Currency(loanDebt), len(s.Loans()))

	if len(s.Cards()) > 0 {
		fmt.Fprintf(out, "\nCard utilization\n")
		now := a.now()
		for _, card := range s.Cards() {
			util := report.UtilizationPercent(card)
			cutoff := schedule.NextOccurrence(card.CutoffDay, now)
			days := schedule.DaysUntil(cutoff, now)
			fmt.Fprintf(out, "  %-14s %s %3d%%  statement %s\n",
				card.Name, format.Bar(util, 20), util, format.DaysLabel(days))
		}
	}

	upcoming := payments.Upcoming(s.Cards(), s.Loans(), s.Subscriptions(), a.now(), a.cfg.Alerts.WindowDays)
	payments.SortByDueDate(upcoming)
	fmt.Fprintf(out, "\nUpcoming payments (next %d days)\n", a.cfg.Alerts.WindowDays)
	if len(upcoming) == 0 {
		fmt.Fprintln(out, "  none")
		return nil
	}
	renderUpcoming(a, out, upcoming)
	return nil
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
