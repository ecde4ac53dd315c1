package payments

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasa-dev/kasa/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func loanDue(id string, due time.Time) model.Loan {
	return model.Loan{ID: id, Name: "loan " + id, MonthlyPayment: dec("100"), NextPaymentDate: due}
}

func TestUpcomingEmptySources(t *testing.T) {
	got := Upcoming(nil, nil, nil, date(2026, time.January, 10), DefaultWindowDays)
	assert.Empty(t, got)
}

func TestUpcomingWindowBoundaries(t *testing.T) {
	now := date(2026, time.January, 10)
	loans := []model.Loan{
		loanDue("today", now),
		loanDue("edge-in", now.AddDate(0, 0, 30)),
		loanDue("edge-out", now.AddDate(0, 0, 31)),
		loanDue("past", now.AddDate(0, 0, -1)),
	}

	got := Upcoming(nil, loans, nil, now, DefaultWindowDays)
	require.Len(t, got, 2)
	assert.Equal(t, "loan-today", got[0].ID)
	assert.Equal(t, "loan-edge-in", got[1].ID)
}

func TestUpcomingCardStatement(t *testing.T) {
	// Observed on the 20th, a cutoff on the 15th lands on the 15th of the
	// next month; minimum payment is 20% of 45000.
	now := date(2026, time.January, 20)
	cards := []model.CreditCard{{
		ID:              "c1",
		Name:            "Bonus Card",
		CurrentDebt:     dec("45000"),
		TotalLimit:      dec("100000"),
		CutoffDay:       15,
		MinPaymentRatio: dec("20"),
	}}

	got := Upcoming(cards, nil, nil, now, DefaultWindowDays)
	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "cc-c1", p.ID)
	assert.Equal(t, "Bonus Card statement", p.Name)
	assert.Equal(t, model.PaymentCreditCard, p.Type)
	assert.Equal(t, "c1", p.SourceID)
	assert.Equal(t, date(2026, time.February, 15), p.DueDate)
	assert.True(t, dec("9000").Equal(p.Amount), "got %s", p.Amount)
}

func TestUpcomingSubscriptionProjection(t *testing.T) {
	now := date(2026, time.January, 10)
	subs := []model.Subscription{{ID: "s1", Name: "Netflix", Amount: dec("199.99"), BillingDay: 12}}

	got := Upcoming(nil, nil, subs, now, DefaultWindowDays)
	require.Len(t, got, 1)
	assert.Equal(t, "sub-s1", got[0].ID)
	assert.Equal(t, model.PaymentSubscription, got[0].Type)
	assert.Equal(t, date(2026, time.January, 12), got[0].DueDate)
	assert.True(t, dec("199.99").Equal(got[0].Amount))
}

func TestUpcomingLoanUsesStoredDate(t *testing.T) {
	// Loans are not projected; the stored next payment date is used as-is.
	now := date(2026, time.January, 10)
	due := date(2026, time.January, 15)
	loans := []model.Loan{{ID: "l1", Name: "Konut Kredisi", MonthlyPayment: dec("28500"), NextPaymentDate: due}}

	got := Upcoming(nil, loans, nil, now, DefaultWindowDays)
	require.Len(t, got, 1)
	assert.Equal(t, due, got[0].DueDate)
	assert.Equal(t, "Konut Kredisi", got[0].Name)
	assert.True(t, dec("28500").Equal(got[0].Amount))
}

func TestUpcomingMergesAllSources(t *testing.T) {
	now := date(2026, time.January, 10)
	cards := []model.CreditCard{{ID: "c1", Name: "Card", CurrentDebt: dec("1000"), MinPaymentRatio: dec("20"), CutoffDay: 15}}
	loans := []model.Loan{loanDue("l1", now.AddDate(0, 0, 5))}
	subs := []model.Subscription{{ID: "s1", Name: "Spotify", Amount: dec("59.99"), BillingDay: 12}}

	got := Upcoming(cards, loans, subs, now, DefaultWindowDays)
	assert.Len(t, got, 3)
}

func TestSortByDueDate(t *testing.T) {
	now := date(2026, time.January, 10)
	loans := []model.Loan{
		loanDue("b", now.AddDate(0, 0, 20)),
		loanDue("a", now.AddDate(0, 0, 2)),
		loanDue("c", now.AddDate(0, 0, 9)),
	}

	got := Upcoming(nil, loans, nil, now, DefaultWindowDays)
	SortByDueDate(got)

	require.Len(t, got, 3)
	assert.Equal(t, "loan-a", got[0].ID)
	assert.Equal(t, "loan-c", got[1].ID)
	assert.Equal(t, "loan-b", got[2].ID)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		days int
		want Severity
	}{
		{0, SeverityUrgent},
		{3, SeverityUrgent},
		{4, SeverityWarning},
		{5, SeverityWarning},
		{6, SeverityNormal},
		{30, SeverityNormal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.days, 3, 5), "days=%d", tt.days)
	}
}
