package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSource identifies which collection an upcoming payment was
// synthesized from.
type PaymentSource string

const (
	PaymentCreditCard   PaymentSource = "credit_card"
	PaymentLoan         PaymentSource = "loan"
	PaymentSubscription PaymentSource = "subscription"
)

// UpcomingPayment is a near-term obligation projected from a card, loan or
// subscription. It lives for one render pass: rebuilt every time, never
// stored.
type UpcomingPayment struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	DueDate  time.Time
	Type     PaymentSource
	SourceID string
}
