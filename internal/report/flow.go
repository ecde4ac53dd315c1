package report

import (
	"github.com/shopspring/decimal"

	"github.com/kasa-dev/kasa/internal/model"
)

// CashFlow aggregates a transaction set into income, expense and net.
// Amounts are stored as positive magnitudes; the sign lives in the
// transaction type and is applied only here.
type CashFlow struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Flow sums a transaction set by type.
func Flow(txs []model.Transaction) CashFlow {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case model.TransactionIncome:
			income = income.Add(tx.Amount)
		case model.TransactionExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return CashFlow{Income: income, Expense: expense, Net: income.Sub(expense)}
}

// MonthlySubscriptionTotal sums all subscription amounts for one month.
func MonthlySubscriptionTotal(subs []model.Subscription) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range subs {
		sum = sum.Add(s.Amount)
	}
	return sum
}

// YearlySubscriptionTotal is the monthly total times twelve.
func YearlySubscriptionTotal(subs []model.Subscription) decimal.Decimal {
	return MonthlySubscriptionTotal(subs).Mul(decimal.NewFromInt(12))
}

// TotalMinPayment sums the minimum statement payment across all cards.
func TotalMinPayment(cards []model.CreditCard) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range cards {
		sum = sum.Add(c.MinPayment())
	}
	return sum
}

// TotalMonthlyLoanPayment sums the monthly payment across all loans.
func TotalMonthlyLoanPayment(loans []model.Loan) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range loans {
		sum = sum.Add(l.MonthlyPayment)
	}
	return sum
}
