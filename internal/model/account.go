package model

import "github.com/shopspring/decimal"

// AccountType classifies asset accounts.
type AccountType string

const (
	AccountTypeCash AccountType = "cash"
	AccountTypeBank AccountType = "bank"
)

// AssetAccount is a cash or bank account holding a spendable balance.
// Balances may go negative; nothing enforces otherwise.
type AssetAccount struct {
	ID      string
	Name    string
	Type    AccountType
	Balance decimal.Decimal
	Icon    string
}

// CreditCard is a revolving credit line. CurrentDebt is not capped at
// TotalLimit, so utilization can exceed 100%.
type CreditCard struct {
	ID              string
	Name            string
	TotalLimit      decimal.Decimal
	CurrentDebt     decimal.Decimal
	CutoffDay       int // day of month the statement closes, 1-31
	MinPaymentRatio decimal.Decimal // percent of debt due at cutoff
	Color           string
}

// MinPayment returns the minimum payment due at the next statement:
// CurrentDebt * MinPaymentRatio / 100.
func (c CreditCard) MinPayment() decimal.Decimal {
	return c.CurrentDebt.Mul(c.MinPaymentRatio).Div(decimal.NewFromInt(100))
}

// Available returns the unspent portion of the limit. Negative when the
// card is over its limit.
func (c CreditCard) Available() decimal.Decimal {
	return c.TotalLimit.Sub(c.CurrentDebt)
}
