// Package format renders money and dates for terminal display.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Printer renders amounts with locale-aware digit grouping and a currency
// symbol prefix. Amounts are rounded to whole units, matching the
// zero-fraction-digit display the dashboard uses.
type Printer struct {
	p      *message.Printer
	symbol string
}

// NewPrinter builds a Printer for a BCP 47 locale tag. Unparseable tags
// fall back to English grouping.
func NewPrinter(localeTag, symbol string) *Printer {
	tag, err := language.Parse(localeTag)
	if err != nil {
		tag = language.English
	}
	return &Printer{p: message.NewPrinter(tag), symbol: symbol}
}

// Currency renders an amount as e.g. "₺2.440.500" (tr) or "₺2,440,500"
// (en). Negative amounts keep their sign ahead of the symbol.
func (pr *Printer) Currency(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-" + pr.symbol + pr.p.Sprint(number.Decimal(-n))
	}
	return pr.symbol + pr.p.Sprint(number.Decimal(n))
}

// SignedCurrency renders an amount with an explicit leading sign, for
// income/expense columns.
func (pr *Printer) SignedCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return pr.Currency(d)
	}
	return "+" + pr.Currency(d)
}

// Date renders a calendar date like "02 Jan 2026".
func Date(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// ShortDate renders a calendar date like "02 Jan".
func ShortDate(t time.Time) string {
	return t.Format("02 Jan")
}

// DaysLabel describes a days-until value in words.
func DaysLabel(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("%d days overdue", -days)
	case days == -1:
		return "1 day overdue"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// Bar renders a fixed-width utilization bar, clamped to [0, 100] for
// display only; the underlying percentage may exceed 100.
func Bar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := percent * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}
