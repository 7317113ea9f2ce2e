package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kasva-dev/kasva/internal/model"
	"github.com/kasva-dev/kasva/internal/normalize"
)

// Header is the CSV header for cashflow.csv.
const Header = "date,category,cashier,description,umk,spj,note"

const (
	numFields  = 7
	dateFormat = "02/01/2006"
	colDate    = 0
	colCat     = 1
	colCashier = 2
	colDesc    = 3
	colUMK     = 4
	colSPJ     = 5
	colNote    = 6
)

// requiredColumns must appear in the header row. Cashier and note are
// optional; older sheets predate both columns.
var requiredColumns = []string{"date", "category", "description", "umk", "spj"}

// Record is one raw cashflow.csv row, cells as written. Amount and
// date cells stay strings here; normalization happens on load.
type Record struct {
	Date        string
	Category    string
	Cashier     string
	Description string
	UMK         string
	SPJ         string
	Note        string
}

// SchemaError reports required columns missing from the header row.
// It is a structural failure of the whole file, unlike a malformed
// cell, which normalizes to zero and is never an error.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("cashflow schema missing columns: %s", strings.Join(e.Missing, ", "))
}

// ReadRecords reads raw rows from a cashflow.csv reader. The header
// row is matched by name so column order does not matter. An empty
// file yields an empty, valid snapshot.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading cashflow CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	for _, row := range rows[1:] {
		records = append(records, Record{
			Date:        cell(row, "date"),
			Category:    cell(row, "category"),
			Cashier:     cell(row, "cashier"),
			Description: cell(row, "description"),
			UMK:         cell(row, "umk"),
			SPJ:         cell(row, "spj"),
			Note:        cell(row, "note"),
		})
	}
	return records, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Missing: missing}
	}
	return cols, nil
}

// WriteRecords writes raw rows to a cashflow.csv writer, header first.
func WriteRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendRecords appends raw rows without a header.
func AppendRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(rec Record) []string {
	row := make([]string, numFields)
	row[colDate] = rec.Date
	row[colCat] = rec.Category
	row[colCashier] = rec.Cashier
	row[colDesc] = rec.Description
	row[colUMK] = rec.UMK
	row[colSPJ] = rec.SPJ
	row[colNote] = rec.Note
	return row
}

// Normalize converts a raw record into a Transaction. Bad cells never
// fail: an unparseable date becomes undated, bad money becomes zero.
func Normalize(rec Record, loc normalize.Locale) model.Transaction {
	return model.Transaction{
		Date:         normalize.ParseDate(rec.Date),
		Category:     strings.TrimSpace(rec.Category),
		Cashier:      strings.TrimSpace(rec.Cashier),
		Description:  strings.TrimSpace(rec.Description),
		Disbursement: normalize.ParseAmount(rec.UMK, loc),
		Settlement:   normalize.ParseAmount(rec.SPJ, loc),
		Note:         strings.TrimSpace(rec.Note),
	}
}

// MarshalTransaction converts a Transaction back into a raw record,
// dates as dd/mm/yyyy and amounts as plain decimal strings.
func MarshalTransaction(tx model.Transaction) Record {
	rec := Record{
		Category:    tx.Category,
		Cashier:     tx.Cashier,
		Description: tx.Description,
		UMK:         tx.Disbursement.String(),
		SPJ:         tx.Settlement.String(),
		Note:        tx.Note,
	}
	if tx.Dated() {
		rec.Date = tx.Date.Format(dateFormat)
	}
	return rec
}
