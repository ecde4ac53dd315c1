package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kasa-dev/kasa/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotalsOverEmptyCollections(t *testing.T) {
	assert.True(t, TotalAssets(nil).IsZero())
	assert.True(t, TotalCardDebt(nil).IsZero())
	assert.True(t, TotalLoanDebt(nil).IsZero())
	assert.True(t, TotalLiabilities(nil, nil).IsZero())
	assert.True(t, NetWorth(nil, nil, nil).IsZero())
}

func TestNetWorthExact(t *testing.T) {
	accounts := []model.AssetAccount{
		{ID: "a1", Balance: dec("50000")},
		{ID: "a2", Balance: dec("2000")},
		{ID: "a3", Balance: dec("15000")},
	}
	cards := []model.CreditCard{
		{ID: "c1", CurrentDebt: dec("45000")},
		{ID: "c2", CurrentDebt: dec("10000")},
		{ID: "c3", CurrentDebt: dec("22500")},
	}
	loans := []model.Loan{
		{ID: "l1", RemainingAmount: dec("2150000")},
		{ID: "l2", RemainingAmount: dec("280000")},
	}

	assets := TotalAssets(accounts)
	liabilities := TotalLiabilities(cards, loans)
	net := NetWorth(accounts, cards, loans)

	assert.True(t, dec("67000").Equal(assets), "assets = %s", assets)
	assert.True(t, dec("2507500").Equal(liabilities), "liabilities = %s", liabilities)
	assert.True(t, dec("-2440500").Equal(net), "net = %s", net)
	assert.True(t, assets.Sub(liabilities).Equal(net), "no rounding drift")
}

func TestUtilizationPercent(t *testing.T) {
	tests := []struct {
		name  string
		debt  string
		limit string
		want  int
	}{
		{"typical", "45000", "100000", 45},
		{"rounds", "22500", "75000", 30},
		{"over limit still defined", "150000", "100000", 150},
		{"zero limit guards division", "5000", "0", 0},
		{"zero debt", "0", "100000", 0},
		{"rounds half up", "125", "1000", 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := model.CreditCard{CurrentDebt: dec(tt.debt), TotalLimit: dec(tt.limit)}
			assert.Equal(t, tt.want, UtilizationPercent(card))
		})
	}
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 13, ProgressPercent(24, 180))
	assert.Equal(t, 38, ProgressPercent(18, 48))
	assert.Equal(t, 0, ProgressPercent(5, 0))
	assert.Equal(t, 100, ProgressPercent(48, 48))
}

func TestFlow(t *testing.T) {
	txs := []model.Transaction{
		{Amount: dec("35000"), Type: model.TransactionIncome},
		{Amount: dec("8000"), Type: model.TransactionIncome},
		{Amount: dec("1250"), Type: model.TransactionExpense},
		{Amount: dec("800"), Type: model.TransactionExpense},
	}

	flow := Flow(txs)
	assert.True(t, dec("43000").Equal(flow.Income))
	assert.True(t, dec("2050").Equal(flow.Expense))
	assert.True(t, dec("40950").Equal(flow.Net))
}

func TestFlowEmpty(t *testing.T) {
	flow := Flow(nil)
	assert.True(t, flow.Income.IsZero())
	assert.True(t, flow.Expense.IsZero())
	assert.True(t, flow.Net.IsZero())
}

func TestSubscriptionTotals(t *testing.T) {
	subs := []model.Subscription{
		{Amount: dec("199.99")},
		{Amount: dec("59.99")},
	}

	monthly := MonthlySubscriptionTotal(subs)
	assert.True(t, dec("259.98").Equal(monthly), "monthly = %s", monthly)
	assert.True(t, dec("3119.76").Equal(YearlySubscriptionTotal(subs)))
	assert.True(t, MonthlySubscriptionTotal(nil).IsZero())
}

func TestTotalMinPayment(t *testing.T) {
	cards := []model.CreditCard{
		{CurrentDebt: dec("45000"), MinPaymentRatio: dec("20")},
		{CurrentDebt: dec("10000"), MinPaymentRatio: dec("25")},
		{CurrentDebt: dec("22500"), MinPaymentRatio: dec("20")},
	}
	total := TotalMinPayment(cards)
	assert.True(t, dec("16000").Equal(total), "total = %s", total)
	assert.True(t, TotalMinPayment(nil).IsZero())
}

func TestTotalMonthlyLoanPayment(t *testing.T) {
	loans := []model.Loan{
		{MonthlyPayment: dec("28500")},
		{MonthlyPayment: dec("12500")},
	}
	assert.True(t, dec("41000").Equal(TotalMonthlyLoanPayment(loans)))
}
