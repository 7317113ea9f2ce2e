package ledger

import (
	"time"

	"github.com/kasva-dev/kasva/internal/model"
)

// Filter narrows a snapshot before computation. Zero-valued fields
// match everything. Filtering never changes normalization results;
// it only drops rows.
type Filter struct {
	Year     int // 0 = all years
	Category string
	Cashier  string
	From     time.Time // inclusive, zero = open
	To       time.Time // inclusive, zero = open
}

// Apply returns the rows matching the filter, preserving input order.
// Undated rows fail any date constraint (year or range) but pass an
// unconstrained filter.
func (f Filter) Apply(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if f.match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) match(t model.Transaction) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Cashier != "" && t.Cashier != f.Cashier {
		return false
	}

	dateConstrained := f.Year != 0 || !f.From.IsZero() || !f.To.IsZero()
	if !dateConstrained {
		return true
	}
	if !t.Dated() {
		return false
	}
	if f.Year != 0 && t.Date.Year() != f.Year {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(f.To) {
		return false
	}
	return true
}
