// Package schedule projects recurring billing days onto calendar dates and
// measures calendar-day distances.
package schedule

import (
	"math"
	"time"
)

// Midnight truncates t to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextOccurrence returns the next calendar date on which the given day of
// month occurs, relative to today. If today's day of month is before day,
// that is this month; otherwise it is next month, rolling the year over at
// December.
//
// When day exceeds the length of the resolved month, time.Date normalizes
// the overflow into the following month (April 31 -> May 1). That matches
// the observed product behavior for cutoff day 31 and is deliberately not
// clamped.
func NextOccurrence(day int, today time.Time) time.Time {
	y, m, _ := today.Date()
	if today.Day() < day {
		return time.Date(y, m, day, 0, 0, 0, 0, today.Location())
	}
	return time.Date(y, m+1, day, 0, 0, 0, 0, today.Location())
}

// DaysUntil returns the number of calendar days from today until target,
// with both sides truncated to midnight. 0 means due today; negative means
// target is in the past. Truncation guarantees same-calendar-day inputs
// yield exactly 0 regardless of time of day.
func DaysUntil(target, today time.Time) int {
	diff := Midnight(target).Sub(Midnight(today))
	return int(math.Ceil(diff.Hours() / 24))
}
