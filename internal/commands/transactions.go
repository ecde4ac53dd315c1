package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kasa-dev/kasa/internal/format"
	"github.com/kasa-dev/kasa/internal/journal"
	"github.com/kasa-dev/kasa/internal/model"
	"github.com/kasa-dev/kasa/internal/policy"
	"github.com/kasa-dev/kasa/internal/report"
	"github.com/kasa-dev/kasa/internal/store"
)

func newTransactionsCommand(a *app) *cobra.Command {
	var (
		search   string
		category string
		from     string
		to       string
		account  string
		user     string
	)

	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "List transactions, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := journal.Filter{
				Search:    search,
				Category:  category,
				AccountID: account,
				UserID:    user,
			}
			var err error
			if filter.From, err = parseDateFlag("from", from); err != nil {
				return err
			}
			if filter.To, err = parseDateFlag("to", to); err != nil {
				return err
			}
			return runTransactionList(a, cmd.OutOrStdout(), filter)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring of description or category")
	cmd.Flags().StringVar(&category, "category", journal.CategoryAll, "exact category ('all' disables)")
	cmd.Flags().StringVar(&from, "from", "", "inclusive start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "inclusive end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&account, "account", "", "account or card ID")
	cmd.Flags().StringVar(&user, "user", "", "household member ID")

	cmd.AddCommand(newTxAddCommand(a), newTxEditCommand(a), newTxRemoveCommand(a))
	return cmd
}

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(store.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --%s %q: %w", name, value, err)
	}
	return t, nil
}

func runTransactionList(a *app, out io.Writer, filter journal.Filter) error {
	all := a.store.Transactions()
	matched := filter.Apply(all)

	// An empty filtered view reads differently from an empty collection.
	if len(matched) == 0 {
		if filter.Active() {
			fmt.Fprintln(out, "No transactions match the current filters.")
		} else {
			fmt.Fprintln(out, "No transactions recorded yet.")
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tUSER\tDESCRIPTION\tCATEGORY\tACCOUNT\tAMOUNT")
	for _, tx := range matched {
		desc := tx.Description
		if tx.HasInstallments() {
			desc = fmt.Sprintf("%s (%d/%d)", desc, tx.CurrentInstallment, tx.Installments)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			format.Date(tx.Date),
			a.store.UserName(tx.UserID),
			desc,
			tx.Category,
			a.store.AccountName(tx.AccountID),
			a.printer.SignedCurrency(tx.Signed()))
	}
	tw.Flush()

	flow := report.Flow(matched)
	fmt.Fprintf(out, "\nIncome:  %s\n", a.printer.Currency(flow.Income))
	fmt.Fprintf(out, "Expense: %s\n", a.printer.Currency(flow.Expense))
	fmt.Fprintf(out, "Net:     %s\n", a.printer.Currency(flow.Net))
	return nil
}

func newTxAddCommand(a *app) *cobra.Command {
	var (
		description  string
		amount       string
		category     string
		account      string
		userID       string
		date         string
		txType       string
		installments int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction (in memory for this run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor := a.currentUser()

			// Recording against someone else requires the assign-owner
			// capability; everyone records against themselves.
			target := userID
			if target == "" {
				target = actor.ID
			}
			if target != actor.ID && !policy.Can(actor.Role, policy.CapAssignOwner) {
				return fmt.Errorf("%s (%s) may not record transactions for other members", actor.Name, actor.Role)
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amount, err)
			}
			if amt.IsNegative() {
				return fmt.Errorf("--amount must be a positive magnitude; use --type to mark income or expense")
			}

			t := model.TransactionType(txType)
			if t != model.TransactionIncome && t != model.TransactionExpense {
				return fmt.Errorf("unknown transaction type %q (income or expense)", txType)
			}

			when := a.now()
			if date != "" {
				if when, err = time.Parse(store.DateLayout, date); err != nil {
					return fmt.Errorf("parsing --date %q: %w", date, err)
				}
			}

			if installments > 1 && !a.store.IsCard(account) {
				return fmt.Errorf("installments are only available on credit card accounts")
			}

			inst, current := 0, 0
			if installments > 1 {
				inst, current = installments, 1
			}

			tx := a.store.AddTransaction(model.Transaction{
				Date:               when,
				UserID:             target,
				Description:        description,
				Category:           category,
				Amount:             amt,
				AccountID:          account,
				Type:               t,
				Installments:       inst,
				CurrentInstallment: current,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s: %s (%s)\n",
				tx.Type, a.printer.Currency(tx.Amount), tx.Description, tx.ID)
			return runTransactionList(a, cmd.OutOrStdout(), journal.Filter{})
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&amount, "amount", "", "positive amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", "Diğer", "category")
	cmd.Flags().StringVar(&account, "account", "", "account or card ID (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&userID, "user", "", "member the transaction belongs to (admins only)")
	cmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&txType, "type", string(model.TransactionExpense), "income or expense")
	cmd.Flags().IntVar(&installments, "installments", 1, "installment count (credit cards only)")

	return cmd
}

func newTxEditCommand(a *app) *cobra.Command {
	var (
		txID        string
		description string
		amount      string
		category    string
		date        string
		txType      string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a transaction by ID (in memory for this run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, ok := a.store.Transaction(txID)
			if !ok {
				return fmt.Errorf("no transaction with ID %s", txID)
			}

			if description != "" {
				tx.Description = description
			}
			if amount != "" {
				amt, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("parsing --amount %q: %w", amount, err)
				}
				tx.Amount = amt
			}
			if category != "" {
				tx.Category = category
			}
			if date != "" {
				when, err := time.Parse(store.DateLayout, date)
				if err != nil {
					return fmt.Errorf("parsing --date %q: %w", date, err)
				}
				tx.Date = when
			}
			if txType != "" {
				t := model.TransactionType(txType)
				if t != model.TransactionIncome && t != model.TransactionExpense {
					return fmt.Errorf("unknown transaction type %q (income or expense)", txType)
				}
				tx.Type = t
			}

			a.store.UpdateTransaction(tx)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated transaction %s\n", tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&txID, "id", "", "transaction ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&description, "desc", "", "new description")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&date, "date", "", "new date, YYYY-MM-DD")
	cmd.Flags().StringVar(&txType, "type", "", "income or expense")

	return cmd
}

func newTxRemoveCommand(a *app) *cobra.Command {
	var txID string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a transaction by ID (in memory for this run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.store.DeleteTransaction(txID) {
				return fmt.Errorf("no transaction with ID %s", txID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", txID)
			return nil
		},
	}

	cmd.Flags().StringVar(&txID, "id", "", "transaction ID (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
