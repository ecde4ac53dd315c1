package model

import "github.com/shopspring/decimal"

// Subscription is a recurring monthly charge billed on a fixed day of the
// month.
type Subscription struct {
	ID         string
	Name       string
	Amount     decimal.Decimal
	BillingDay int // 1-31
	Category   string
	Icon       string
	Color      string
	LogoURL    string
}
