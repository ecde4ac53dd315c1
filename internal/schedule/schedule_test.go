package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name  string
		day   int
		today time.Time
		want  time.Time
	}{
		{"before target day stays in current month", 15, date(2026, time.January, 10), date(2026, time.January, 15)},
		{"on target day rolls to next month", 15, date(2026, time.January, 15), date(2026, time.February, 15)},
		{"after target day rolls to next month", 15, date(2026, time.January, 20), date(2026, time.February, 15)},
		{"december rolls the year over", 10, date(2026, time.December, 20), date(2027, time.January, 10)},
		{"first of month", 1, date(2026, time.March, 1), date(2026, time.April, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextOccurrence(tt.day, tt.today))
		})
	}
}

// Day 31 projected into a 30-day month normalizes into the following
// month rather than clamping. This pins down the current product
// behavior.
func TestNextOccurrenceOverflow(t *testing.T) {
	got := NextOccurrence(31, date(2026, time.April, 20))
	assert.Equal(t, date(2026, time.May, 1), got)

	// February overflows further.
	got = NextOccurrence(31, date(2026, time.February, 10))
	assert.Equal(t, date(2026, time.March, 3), got)
}

func TestNextOccurrenceIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, time.January, 10, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, date(2026, time.January, 15), NextOccurrence(15, today))
}

func TestDaysUntil(t *testing.T) {
	today := date(2026, time.January, 10)

	assert.Equal(t, 0, DaysUntil(today, today))
	assert.Equal(t, 30, DaysUntil(today.AddDate(0, 0, 30), today))
	assert.Equal(t, 1, DaysUntil(today.AddDate(0, 0, 1), today))
	assert.Equal(t, -1, DaysUntil(today.AddDate(0, 0, -1), today))
	assert.Equal(t, -7, DaysUntil(today.AddDate(0, 0, -7), today))
}

func TestDaysUntilSameDayAnyTime(t *testing.T) {
	// Same calendar day yields 0 regardless of time of day on either side.
	target := time.Date(2026, time.January, 10, 1, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.January, 10, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysUntil(target, today))
	assert.Equal(t, 0, DaysUntil(today, target))
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, time.June, 3, 17, 42, 9, 123, time.UTC)
	assert.Equal(t, date(2026, time.June, 3), Midnight(in))
}
