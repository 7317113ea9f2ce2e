package categories

import (
	"encoding/csv"
	"fmt"
	"io"
)

const (
	numFields = 3
	colCode   = 0
	colName   = 1
	colDesc   = 2
)

// Category is a row in categories.csv: a budget line that runs its
// own balance sequence.
type Category struct {
	Code        string // short key used on cashflow rows, e.g. "UMPEG"
	Name        string
	Description string
}

// ReadCategories reads categories.csv.
func ReadCategories(r io.Reader) ([]Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var cats []Category
	for i, rec := range records[1:] {
		cat, err := UnmarshalCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// WriteCategories writes categories.csv.
func WriteCategories(w io.Writer, cats []Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "name", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, cat := range cats {
		if err := cw.Write(MarshalCategory(cat)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(cat Category) []string {
	row := make([]string, numFields)
	row[colCode] = cat.Code
	row[colName] = cat.Name
	row[colDesc] = cat.Description
	return row
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(record []string) (Category, error) {
	if len(record) != numFields {
		return Category{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colCode] == "" {
		return Category{}, fmt.Errorf("empty category code")
	}
	return Category{
		Code:        record[colCode],
		Name:        record[colName],
		Description: record[colDesc],
	}, nil
}
