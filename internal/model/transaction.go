package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType marks a transaction as money in or money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single recorded movement. Amount is always stored as a
// positive magnitude; the sign comes from Type at display and summation
// time and is never written back.
type Transaction struct {
	ID                 string
	Date               time.Time
	UserID             string
	Description        string
	Category           string
	Amount             decimal.Decimal
	AccountID          string
	Type               TransactionType
	Installments       int // 0 or 1 = single charge
	CurrentInstallment int
}

// Signed returns the amount with the sign implied by Type.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// HasInstallments reports whether the charge is split over multiple
// payments.
func (t Transaction) HasInstallments() bool {
	return t.Installments > 1
}
