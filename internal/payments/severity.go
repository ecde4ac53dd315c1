package payments

// Severity grades how soon a payment is due, for display emphasis.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityUrgent
)

// Classify maps a days-until value onto a severity given the urgent and
// warning thresholds (days remaining at or below each).
func Classify(daysUntil, urgentDays, warningDays int) Severity {
	switch {
	case daysUntil <= urgentDays:
		return SeverityUrgent
	case daysUntil <= warningDays:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}
