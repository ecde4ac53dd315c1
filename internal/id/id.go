package id

import "github.com/google/uuid"

// New returns a fresh opaque unique ID for a stored entity.
func New() string {
	return uuid.NewString()
}

// ForCard returns the derived ID of a card's upcoming statement payment.
// Derived IDs are deterministic per source because upcoming payments are
// rebuilt on every pass and never stored.
func ForCard(sourceID string) string {
	return "cc-" + sourceID
}

// ForLoan returns the derived ID of a loan's upcoming installment payment.
func ForLoan(sourceID string) string {
	return "loan-" + sourceID
}

// ForSubscription returns the derived ID of a subscription's upcoming
// billing payment.
func ForSubscription(sourceID string) string {
	return "sub-" + sourceID
}
