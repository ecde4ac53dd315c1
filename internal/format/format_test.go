package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCurrencyEnglishGrouping(t *testing.T) {
	p := NewPrinter("en", "$")

	assert.Equal(t, "$1,234,567", p.Currency(dec("1234567")))
	assert.Equal(t, "$0", p.Currency(dec("0")))
	assert.Equal(t, "-$2,440,500", p.Currency(dec("-2440500")))
	// Whole-unit display: fractions round away.
	assert.Equal(t, "$200", p.Currency(dec("199.99")))
}

func TestCurrencyUnknownLocaleFallsBack(t *testing.T) {
	p := NewPrinter("not a locale", "$")
	assert.Equal(t, "$1,000", p.Currency(dec("1000")))
}

func TestSignedCurrency(t *testing.T) {
	p := NewPrinter("en", "$")

	assert.Equal(t, "+$800", p.SignedCurrency(dec("800")))
	assert.Equal(t, "-$800", p.SignedCurrency(dec("-800")))
}

func TestDates(t *testing.T) {
	d := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02 Jan 2026", Date(d))
	assert.Equal(t, "02 Jan", ShortDate(d))
}

func TestDaysLabel(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{-3, "3 days overdue"},
		{-1, "1 day overdue"},
		{0, "today"},
		{1, "tomorrow"},
		{12, "in 12 days"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysLabel(tt.days))
	}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", Bar(50, 10))
	assert.Equal(t, "░░░░░░░░░░", Bar(0, 10))
	assert.Equal(t, "██████████", Bar(100, 10))
	// Over-limit utilization clamps to a full bar for display.
	assert.Equal(t, "██████████", Bar(150, 10))
	assert.Equal(t, "", Bar(50, 0))
}
