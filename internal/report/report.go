// Package report computes derived financial totals. Every function is a
// total function over possibly-empty collections; empty input yields zero.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/kasa-dev/kasa/internal/model"
)

var hundred = decimal.NewFromInt(100)

// TotalAssets sums all asset account balances.
func TotalAssets(accounts []model.AssetAccount) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		sum = sum.Add(a.Balance)
	}
	return sum
}

// TotalCardDebt sums current debt across all credit cards.
func TotalCardDebt(cards []model.CreditCard) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range cards {
		sum = sum.Add(c.CurrentDebt)
	}
	return sum
}

// TotalLoanDebt sums remaining principal across all loans.
func TotalLoanDebt(loans []model.Loan) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range loans {
		sum = sum.Add(l.RemainingAmount)
	}
	return sum
}

// TotalLiabilities is card debt plus remaining loan debt.
func TotalLiabilities(cards []model.CreditCard, loans []model.Loan) decimal.Decimal {
	return TotalCardDebt(cards).Add(TotalLoanDebt(loans))
}

// NetWorth is total assets minus total liabilities.
func NetWorth(accounts []model.AssetAccount, cards []model.CreditCard, loans []model.Loan) decimal.Decimal {
	return TotalAssets(accounts).Sub(TotalLiabilities(cards, loans))
}

// UtilizationPercent returns a card's debt as a rounded percentage of its
// limit. 0 when the limit is 0; above 100 when the card is over limit.
func UtilizationPercent(card model.CreditCard) int {
	if card.TotalLimit.IsZero() {
		return 0
	}
	return int(card.CurrentDebt.Div(card.TotalLimit).Mul(hundred).Round(0).IntPart())
}

// ProgressPercent returns part as a rounded percentage of total, 0 when
// total is 0. Used for loan installment progress.
func ProgressPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred).Round(0).IntPart())
}
