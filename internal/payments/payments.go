// Package payments synthesizes the upcoming-payments view from the three
// obligation sources: credit card statements, loan installments and
// subscription billings.
package payments

import (
	"sort"
	"time"

	"github.com/kasa-dev/kasa/internal/id"
	"github.com/kasa-dev/kasa/internal/model"
	"github.com/kasa-dev/kasa/internal/schedule"
)

// DefaultWindowDays is the inclusive look-ahead window for upcoming
// payments.
const DefaultWindowDays = 30

// Upcoming merges projected due dates from cards, loans and subscriptions
// into one list, keeping entries whose distance from now falls inside
// [0, windowDays] calendar days. Card and subscription due dates are
// projected from their billing day; loans use their stored next payment
// date as-is. The result is in source order; callers that present it sort
// once at the boundary with SortByDueDate.
func Upcoming(cards []model.CreditCard, loans []model.Loan, subs []model.Subscription, now time.Time, windowDays int) []model.UpcomingPayment {
	all := make([]model.UpcomingPayment, 0, len(cards)+len(loans)+len(subs))

	for _, c := range cards {
		all = append(all, model.UpcomingPayment{
			ID:       id.ForCard(c.ID),
			Name:     c.Name + " statement",
			Amount:   c.MinPayment(),
			DueDate:  schedule.NextOccurrence(c.CutoffDay, now),
			Type:     model.PaymentCreditCard,
			SourceID: c.ID,
		})
	}
	for _, l := range loans {
		all = append(all, model.UpcomingPayment{
			ID:       id.ForLoan(l.ID),
			Name:     l.Name,
			Amount:   l.MonthlyPayment,
			DueDate:  l.NextPaymentDate,
			Type:     model.PaymentLoan,
			SourceID: l.ID,
		})
	}
	for _, s := range subs {
		all = append(all, model.UpcomingPayment{
			ID:       id.ForSubscription(s.ID),
			Name:     s.Name,
			Amount:   s.Amount,
			DueDate:  schedule.NextOccurrence(s.BillingDay, now),
			Type:     model.PaymentSubscription,
			SourceID: s.ID,
		})
	}

	kept := all[:0]
	for _, p := range all {
		days := schedule.DaysUntil(p.DueDate, now)
		if days >= 0 && days <= windowDays {
			kept = append(kept, p)
		}
	}
	return kept
}

// SortByDueDate orders payments ascending by due date, in place. Stable so
// same-day entries keep their source order.
func SortByDueDate(ps []model.UpcomingPayment) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].DueDate.Before(ps[j].DueDate)
	})
}
