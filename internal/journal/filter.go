// Package journal narrows and orders transaction collections for display.
package journal

import (
	"sort"
	"strings"
	"time"

	"github.com/kasa-dev/kasa/internal/model"
)

// CategoryAll is the sentinel category value that disables category
// filtering.
const CategoryAll = "all"

// Filter holds the optional, AND-combined predicates for a transaction
// listing. Zero values disable the corresponding predicate.
type Filter struct {
	Search    string    // case-insensitive substring of description or category
	Category  string    // exact match; "" or CategoryAll disables
	From      time.Time // inclusive lower date bound
	To        time.Time // inclusive upper date bound
	AccountID string    // exact match
	UserID    string    // exact match
}

// Active reports whether any predicate is set. Callers use it to tell an
// empty filtered view apart from an empty collection.
func (f Filter) Active() bool {
	return f.Search != "" ||
		(f.Category != "" && f.Category != CategoryAll) ||
		!f.From.IsZero() || !f.To.IsZero() ||
		f.AccountID != "" || f.UserID != ""
}

// Match reports whether a single transaction passes all set predicates.
func (f Filter) Match(tx model.Transaction) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.Description), needle) &&
			!strings.Contains(strings.ToLower(tx.Category), needle) {
			return false
		}
	}
	if f.Category != "" && f.Category != CategoryAll && tx.Category != f.Category {
		return false
	}
	if !f.From.IsZero() && tx.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && tx.Date.After(f.To) {
		return false
	}
	if f.AccountID != "" && tx.AccountID != f.AccountID {
		return false
	}
	if f.UserID != "" && tx.UserID != f.UserID {
		return false
	}
	return true
}

// Apply returns the matching transactions ordered most-recent-first. The
// input slice is left untouched; ties keep their input order.
func (f Filter) Apply(txs []model.Transaction) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txs {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
