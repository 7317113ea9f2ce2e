// Package ledger computes running balances and settlement deadlines
// over a snapshot of cash-flow transactions. Each call works on its
// own copy of the input and returns fresh derived structures; the
// snapshot itself is never mutated.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasva-dev/kasva/internal/model"
)

// GroupMode selects the grouping key for balance sequences.
type GroupMode string

const (
	// GroupByCategory keys groups on category alone.
	GroupByCategory GroupMode = "category"
	// GroupByCategoryCashier keys groups on category and cashier, so
	// each cashier runs an independent balance per category.
	GroupByCategoryCashier GroupMode = "category-cashier"
)

// Key returns the grouping key for a transaction under this mode.
func (m GroupMode) Key(t model.Transaction) string {
	if m == GroupByCategoryCashier {
		return t.Category + "\x1f" + t.Cashier
	}
	return t.Category
}

// Policy selects how the running balance is seeded.
type Policy string

const (
	// PolicyPerGroup runs one balance per group. The first row of a
	// group seeds the balance with its disbursement alone; its
	// settlement, if any, is not subtracted (opening advance, not yet
	// reconciled). This is the default.
	PolicyPerGroup Policy = "per-group"
	// PolicyGlobal runs a single chronological balance over all rows,
	// starting at zero, with no seed special case.
	PolicyGlobal Policy = "global"
)

// DefaultGraceDays is the settlement grace period applied when a
// disbursement has no later settlement in its group.
const DefaultGraceDays = 21

// Options configures a Compute invocation.
type Options struct {
	Mode      GroupMode
	Policy    Policy
	GraceDays int // 0 means DefaultGraceDays
}

// Row is a transaction annotated with its derived values.
type Row struct {
	model.Transaction
	Balance decimal.Decimal
	DueDate time.Time // zero = reconciled or indeterminate
}

// HasDeadline reports whether the row was assigned a due date.
func (r Row) HasDeadline() bool {
	return !r.DueDate.IsZero()
}

// GroupSummary aggregates one grouping key.
type GroupSummary struct {
	Category          string
	Cashier           string // empty under GroupByCategory
	TotalDisbursement decimal.Decimal
	TotalSettlement   decimal.Decimal
	// FinalBalance is the last row's running balance under the active
	// policy, zero for an empty group. Negative values are legitimate:
	// settlements exceeded disbursements.
	FinalBalance decimal.Decimal
	// Realization is settlements over disbursements as a percentage,
	// zero when the group has no disbursements.
	Realization decimal.Decimal
}

// Result is the full derived view over one snapshot.
type Result struct {
	// Rows are ordered by group key then date under PolicyPerGroup,
	// or purely chronologically under PolicyGlobal. Undated rows sort
	// after dated ones; ties keep input order.
	Rows   []Row
	Groups []GroupSummary
	// Totals aggregates the whole snapshot. Its FinalBalance is total
	// disbursement minus total settlement (the net cash position).
	Totals GroupSummary
}

var hundred = decimal.NewFromInt(100)

// Compute partitions, sorts, runs balances and infers deadlines in
// one pass over an immutable snapshot.
func Compute(txns []model.Transaction, opts Options) Result {
	if opts.GraceDays == 0 {
		opts.GraceDays = DefaultGraceDays
	}

	rows := make([]Row, len(txns))
	for i, t := range txns {
		rows[i] = Row{Transaction: t}
	}

	if opts.Policy == PolicyGlobal {
		sortRows(rows, func(a, b Row) bool { return dateLess(a, b) })
		runGlobalBalance(rows)
	} else {
		sortRows(rows, func(a, b Row) bool {
			ka, kb := opts.Mode.Key(a.Transaction), opts.Mode.Key(b.Transaction)
			if ka != kb {
				return ka < kb
			}
			return dateLess(a, b)
		})
	}

	// Partition into groups over the sorted order. Under PolicyGlobal
	// the rows of a group stay date-sorted relative to each other, so
	// the same index lists serve deadlines and summaries.
	byKey := make(map[string][]int)
	var keys []string
	for i := range rows {
		k := opts.Mode.Key(rows[i].Transaction)
		if _, seen := byKey[k]; !seen {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], i)
	}
	sort.Strings(keys)

	res := Result{Rows: rows}
	for _, k := range keys {
		idxs := byKey[k]
		if opts.Policy != PolicyGlobal {
			runGroupBalance(rows, idxs)
		}
		inferDeadlines(rows, idxs, opts.GraceDays)
		res.Groups = append(res.Groups, summarize(rows, idxs, opts.Mode))
	}

	res.Totals = summarizeAll(rows)
	return res
}

// sortRows is a stable sort so equal dates keep input order.
func sortRows(rows []Row, less func(a, b Row) bool) {
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

// dateLess orders by date ascending with undated rows last.
func dateLess(a, b Row) bool {
	switch {
	case !a.Dated():
		return false
	case !b.Dated():
		return true
	default:
		return a.Date.Before(b.Date)
	}
}

// runGroupBalance applies the seeded per-group rule over one group's
// row indices: seed = first row's disbursement, then prev - SPJ + UMK.
func runGroupBalance(rows []Row, idxs []int) {
	var prev decimal.Decimal
	for n, i := range idxs {
		if n == 0 {
			rows[i].Balance = rows[i].Disbursement
		} else {
			rows[i].Balance = prev.Sub(rows[i].Settlement).Add(rows[i].Disbursement)
		}
		prev = rows[i].Balance
	}
}

// runGlobalBalance applies the single cumulative rule over all rows
// in chronological order, starting from zero.
func runGlobalBalance(rows []Row) {
	balance := decimal.Zero
	for i := range rows {
		balance = balance.Sub(rows[i].Settlement).Add(rows[i].Disbursement)
		rows[i].Balance = balance
	}
}

// inferDeadlines assigns due dates to outstanding disbursements in one
// group. A disbursement counts as reconciled when any later row in the
// group carries a positive settlement dated on or after it. The check
// is deliberately not amount-aware: any qualifying settlement closes
// any earlier disbursement, with no amount matching.
func inferDeadlines(rows []Row, idxs []int, graceDays int) {
	for n, i := range idxs {
		if !rows[i].Disbursement.IsPositive() {
			continue
		}
		if !rows[i].Dated() {
			// Indeterminate: no date to anchor a deadline on.
			continue
		}

		reconciled := false
		for _, j := range idxs[n+1:] {
			if !rows[j].Settlement.IsPositive() || !rows[j].Dated() {
				continue
			}
			if !rows[j].Date.Before(rows[i].Date) {
				reconciled = true
				break
			}
		}
		if !reconciled {
			rows[i].DueDate = rows[i].Date.AddDate(0, 0, graceDays)
		}
	}
}

func summarize(rows []Row, idxs []int, mode GroupMode) GroupSummary {
	s := GroupSummary{
		TotalDisbursement: decimal.Zero,
		TotalSettlement:   decimal.Zero,
		FinalBalance:      decimal.Zero,
		Realization:       decimal.Zero,
	}
	if len(idxs) == 0 {
		return s
	}

	first := rows[idxs[0]]
	s.Category = first.Category
	if mode == GroupByCategoryCashier {
		s.Cashier = first.Cashier
	}

	for _, i := range idxs {
		s.TotalDisbursement = s.TotalDisbursement.Add(rows[i].Disbursement)
		s.TotalSettlement = s.TotalSettlement.Add(rows[i].Settlement)
	}
	s.FinalBalance = rows[idxs[len(idxs)-1]].Balance
	s.Realization = realization(s.TotalSettlement, s.TotalDisbursement)
	return s
}

func summarizeAll(rows []Row) GroupSummary {
	s := GroupSummary{
		TotalDisbursement: decimal.Zero,
		TotalSettlement:   decimal.Zero,
		FinalBalance:      decimal.Zero,
		Realization:       decimal.Zero,
	}
	for i := range rows {
		s.TotalDisbursement = s.TotalDisbursement.Add(rows[i].Disbursement)
		s.TotalSettlement = s.TotalSettlement.Add(rows[i].Settlement)
	}
	s.FinalBalance = s.TotalDisbursement.Sub(s.TotalSettlement)
	s.Realization = realization(s.TotalSettlement, s.TotalDisbursement)
	return s
}

// realization is settled/disbursed x 100, zero on a zero denominator.
func realization(settled, disbursed decimal.Decimal) decimal.Decimal {
	if disbursed.IsZero() {
		return decimal.Zero
	}
	return settled.Div(disbursed).Mul(hundred)
}
