package store

import (
	"fmt"

	"github.com/kasva-dev/kasva/internal/model"
)

// ValidationError describes a single data-entry invariant violation.
type ValidationError struct {
	Invariant   int
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Field, e.Description)
}

// CategoryChecker tests whether a category code is registered.
type CategoryChecker interface {
	Exists(code string) bool
}

// ValidateEntry enforces the data-entry invariants on a transaction
// about to be appended. These are stricter than load-time rules: a
// stored sheet may carry undated or uncategorized rows, but new
// entries must not add more.
func ValidateEntry(tx model.Transaction, categories CategoryChecker) []ValidationError {
	var errs []ValidationError

	// Invariant 1: date required on entry.
	if !tx.Dated() {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Field:       "date",
			Description: "date is required",
		})
	}

	// Invariant 2: category required and registered.
	if tx.Category == "" {
		errs = append(errs, ValidationError{
			Invariant:   2,
			Field:       "category",
			Description: "category is required",
		})
	} else if !categories.Exists(tx.Category) {
		errs = append(errs, ValidationError{
			Invariant:   2,
			Field:       "category",
			Description: fmt.Sprintf("unknown category %q", tx.Category),
		})
	}

	// Invariant 3: description required.
	if tx.Description == "" {
		errs = append(errs, ValidationError{
			Invariant:   3,
			Field:       "description",
			Description: "description is required",
		})
	}

	// Invariant 4: amounts non-negative.
	if tx.Disbursement.IsNegative() {
		errs = append(errs, ValidationError{
			Invariant:   4,
			Field:       "umk",
			Description: fmt.Sprintf("disbursement %s is negative", tx.Disbursement),
		})
	}
	if tx.Settlement.IsNegative() {
		errs = append(errs, ValidationError{
			Invariant:   4,
			Field:       "spj",
			Description: fmt.Sprintf("settlement %s is negative", tx.Settlement),
		})
	}

	return errs
}
