package categories

import (
	"fmt"
	"os"
	"path/filepath"
)

const fileName = "categories.csv"

// Service provides in-memory lookup over the category registry.
type Service struct {
	categories []Category
	byCode     map[string]Category
}

// NewService creates a Service from a slice of categories.
func NewService(cats []Category) *Service {
	byCode := make(map[string]Category, len(cats))
	for _, c := range cats {
		byCode[c.Code] = c
	}
	return &Service{categories: cats, byCode: byCode}
}

// Load reads categories.csv from a data directory.
func Load(dataDir string) (*Service, error) {
	path := filepath.Join(dataDir, fileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening categories: %w", err)
	}
	defer f.Close()

	cats, err := ReadCategories(f)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return NewService(cats), nil
}

// All returns all categories.
func (s *Service) All() []Category {
	return s.categories
}

// Get returns a category by code.
func (s *Service) Get(code string) (Category, bool) {
	c, ok := s.byCode[code]
	return c, ok
}

// Exists reports whether a category code is registered.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// Save writes the registry to <dataDir>/categories.csv.
func (s *Service) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dataDir, fileName))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer f.Close()

	if err := WriteCategories(f, s.categories); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}
