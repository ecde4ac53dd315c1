package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a long-term installment debt. Unlike cards and subscriptions its
// next payment date is stored state, not derived from a day of month.
type Loan struct {
	ID                string
	Name              string
	TotalAmount       decimal.Decimal
	RemainingAmount   decimal.Decimal
	TotalInstallments int
	PaidInstallments  int
	MonthlyPayment    decimal.Decimal
	InterestRate      decimal.Decimal // percent
	NextPaymentDate   time.Time
}

// RemainingInstallments returns how many payments are left.
func (l Loan) RemainingInstallments() int {
	return l.TotalInstallments - l.PaidInstallments
}
