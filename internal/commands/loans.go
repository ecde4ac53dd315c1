package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/format"
	"github.com/kasa-dev/kasa/internal/model"
	"github.com/kasa-dev/kasa/internal/report"
	"github.com/kasa-dev/kasa/internal/schedule"
	"github.com/kasa-dev/kasa/internal/store"
)

func newLoansCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "List loans and repayment progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			loans := a.store.Loans()
			if len(loans) == 0 {
				fmt.Fprintln(out, "No loans on file.")
				return nil
			}

			now := a.now()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tREMAINING\tMONTHLY\tRATE\tPROGRESS\tNEXT PAYMENT")
			for _, loan := range loans {
				paid := report.ProgressPercent(loan.PaidInstallments, loan.TotalInstallments)
				days := schedule.DaysUntil(loan.NextPaymentDate, now)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s%%\t%d/%d (%d%%)\t%s (%s)\n",
					loan.Name,
					a.printer.Currency(loan.RemainingAmount),
					a.printer.Currency(loan.MonthlyPayment),
					loan.InterestRate.String(),
					loan.PaidInstallments, loan.TotalInstallments, paid,
					format.ShortDate(loan.NextPaymentDate), format.DaysLabel(days))
			}
			tw.Flush()

			fmt.Fprintf(out, "\nTotal remaining debt: %s\n", a.printer.Currency(report.TotalLoanDebt(loans)))
			fmt.Fprintf(out, "Total monthly payment: %s\n", a.printer.Currency(report.TotalMonthlyLoanPayment(loans)))
			return nil
		},
	}

	cmd.AddCommand(newLoansAddCommand(a))
	return cmd
}

func newLoansAddCommand(a *app) *cobra.Command {
	var (
		name              string
		total             string
		remaining         string
		totalInstallments int
		paidInstallments  int
		monthly           string
		rate              string
		nextPayment       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a loan (in memory for this run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireManage(a); err != nil {
				return err
			}
			totalAmount, err := decimal.NewFromString(total)
			if err != nil {
				return fmt.Errorf("parsing --total %q: %w", total, err)
			}
			remainingAmount, err := decimal.NewFromString(remaining)
			if err != nil {
				return fmt.Errorf("parsing --remaining %q: %w", remaining, err)
			}
			monthlyPayment, err := decimal.NewFromString(monthly)
			if err != nil {
				return fmt.Errorf("parsing --monthly %q: %w", monthly, err)
			}
			interestRate, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("parsing --rate %q: %w", rate, err)
			}
			next, err := time.Parse(store.DateLayout, nextPayment)
			if err != nil {
				return fmt.Errorf("parsing --next-payment %q: %w", nextPayment, err)
			}

			loan := a.store.AddLoan(model.Loan{
				Name:              name,
				TotalAmount:       totalAmount,
				RemainingAmount:   remainingAmount,
				TotalInstallments: totalInstallments,
				PaidInstallments:  paidInstallments,
				MonthlyPayment:    monthlyPayment,
				InterestRate:      interestRate,
				NextPaymentDate:   next,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added loan %s (%s), next payment %s\n",
				loan.Name, loan.ID, format.Date(loan.NextPaymentDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "loan name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&total, "total", "0", "total loan amount")
	cmd.Flags().StringVar(&remaining, "remaining", "0", "remaining amount")
	cmd.Flags().IntVar(&totalInstallments, "installments", 0, "total installment count")
	cmd.Flags().IntVar(&paidInstallments, "paid", 0, "paid installment count")
	cmd.Flags().StringVar(&monthly, "monthly", "0", "monthly payment")
	cmd.Flags().StringVar(&rate, "rate", "0", "interest rate in percent")
	cmd.Flags().StringVar(&nextPayment, "next-payment", "", "next payment date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("next-payment")

	return cmd
}
