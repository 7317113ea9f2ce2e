package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kasva-dev/kasva/internal/model"
	"github.com/kasva-dev/kasva/internal/normalize"
)

// Service loads and appends cashflow.csv for one data directory. It
// owns the snapshot on disk; derived views are recomputed from scratch
// by the ledger on every load.
type Service struct {
	path   string
	locale normalize.Locale
}

// NewService creates a Service for a cashflow.csv path.
func NewService(path string, locale normalize.Locale) *Service {
	return &Service{path: path, locale: locale}
}

// Path returns the cashflow.csv path.
func (s *Service) Path() string {
	return s.path
}

// Load reads and normalizes the full snapshot. A missing file is an
// empty snapshot, not an error; a header missing required columns is
// a *SchemaError.
func (s *Service) Load() ([]model.Transaction, error) {
	records, err := s.LoadRaw()
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(records))
	for _, rec := range records {
		txns = append(txns, Normalize(rec, s.locale))
	}
	return txns, nil
}

// LoadRaw reads the snapshot without normalizing cells.
func (s *Service) LoadRaw() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening cashflow %s: %w", s.path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			return nil, err
		}
		return nil, fmt.Errorf("reading cashflow %s: %w", s.path, err)
	}
	return records, nil
}

// Append writes one transaction to the end of cashflow.csv, creating
// the file and header if needed.
func (s *Service) Append(tx model.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening cashflow: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendRecords(f, []Record{MarshalTransaction(tx)}); err != nil {
		return fmt.Errorf("appending row: %w", err)
	}
	return nil
}

// Init writes an empty cashflow.csv with just the header. Fails if
// the file already exists.
func (s *Service) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("cashflow file already exists: %s", s.path)
	}
	if err := os.WriteFile(s.path, []byte(Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing cashflow: %w", err)
	}
	return nil
}
