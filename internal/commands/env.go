package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kasva-dev/kasva/internal/categories"
	"github.com/kasva-dev/kasva/internal/config"
	"github.com/kasva-dev/kasva/internal/normalize"
	"github.com/kasva-dev/kasva/internal/store"
)

// env bundles everything a command needs from a data directory.
type env struct {
	dir        string
	cfg        *config.Config
	store      *store.Service
	categories *categories.Service
}

// loadEnv resolves a data directory and loads its config, category
// registry and cashflow store.
func loadEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Ledger.Locale()
	if err != nil {
		return nil, err
	}

	cats, err := categories.Load(absDir)
	if err != nil {
		return nil, err
	}

	return &env{
		dir:        absDir,
		cfg:        cfg,
		store:      store.NewService(filepath.Join(absDir, cfg.Ledger.DataFile), loc),
		categories: cats,
	}, nil
}

// parseDateFlag parses a date flag value; empty is allowed, garbage
// is not. Flag input is strict, unlike sheet cells.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d := normalize.ParseDate(value)
	if d.IsZero() {
		return time.Time{}, fmt.Errorf("invalid --%s date %q", name, value)
	}
	return d, nil
}
