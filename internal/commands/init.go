package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasva-dev/kasva/internal/auditlog"
	"github.com/kasva-dev/kasva/internal/categories"
	"github.com/kasva-dev/kasva/internal/config"
	"github.com/kasva-dev/kasva/internal/gitops"
	"github.com/kasva-dev/kasva/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var unit string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Kasva data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, unit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "office name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&unit, "unit", "", "organizational unit")

	return cmd
}

func runInit(dir, name, unit string) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write kasva.yaml.
	cfg := config.Default(name)
	cfg.Office.Unit = unit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the default category registry.
	cats := categories.NewService(categories.DefaultSet())
	if err := cats.Save(dir); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}

	// Write an empty cashflow sheet.
	loc, err := cfg.Ledger.Locale()
	if err != nil {
		return err
	}
	st := store.NewService(filepath.Join(dir, cfg.Ledger.DataFile), loc)
	if err := st.Init(); err != nil {
		return err
	}

	// Initialize git and create the initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitPaths(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail,
		config.FileName, "categories.csv", cfg.Ledger.DataFile)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	entry := auditlog.Entry{
		Timestamp:  time.Now(),
		Actor:      cfg.Git.AuthorName,
		Action:     "init",
		Ref:        cfg.Ledger.DataFile,
		Details:    "initialized " + name,
		CommitHash: hash,
	}
	if err := auditlog.Append(dir, []auditlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}

	fmt.Printf("Initialized Kasva data directory at %s (%s)\n", dir, hash)
	return nil
}
