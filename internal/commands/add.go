package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasva-dev/kasva/internal/auditlog"
	"github.com/kasva-dev/kasva/internal/gitops"
	"github.com/kasva-dev/kasva/internal/logger"
	"github.com/kasva-dev/kasva/internal/model"
	"github.com/kasva-dev/kasva/internal/normalize"
	"github.com/kasva-dev/kasva/internal/store"
	"github.com/kasva-dev/kasva/internal/voucher"
)

func newAddCommand() *cobra.Command {
	var repoDir string
	var dateStr string
	var category string
	var cashier string
	var description string
	var umkStr string
	var spjStr string
	var note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a cash-flow row to the sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(repoDir, addParams{
				date:        dateStr,
				category:    category,
				cashier:     cashier,
				description: description,
				umk:         umkStr,
				spj:         spjStr,
				note:        note,
			})
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "data directory")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date, dd/mm/yyyy (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&category, "category", "", "category code (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&cashier, "cashier", "", "cashier name")
	cmd.Flags().StringVar(&description, "description", "", "description; auto-numbered voucher ref when empty")
	cmd.Flags().StringVar(&umkStr, "umk", "", "disbursement amount")
	cmd.Flags().StringVar(&spjStr, "spj", "", "settlement amount")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")

	return cmd
}

type addParams struct {
	date        string
	category    string
	cashier     string
	description string
	umk         string
	spj         string
	note        string
}

func runAdd(dir string, p addParams) error {
	log := logger.New()

	e, err := loadEnv(dir)
	if err != nil {
		return err
	}

	date, err := parseDateFlag("date", p.date)
	if err != nil {
		return err
	}

	loc, err := e.cfg.Ledger.Locale()
	if err != nil {
		return err
	}

	tx := model.Transaction{
		Date:         date,
		Category:     strings.TrimSpace(p.category),
		Cashier:      strings.TrimSpace(p.cashier),
		Description:  strings.TrimSpace(p.description),
		Disbursement: normalize.ParseAmount(p.umk, loc),
		Settlement:   normalize.ParseAmount(p.spj, loc),
		Note:         strings.TrimSpace(p.note),
	}

	existing, err := e.store.Load()
	if err != nil {
		return err
	}

	// Auto-number a voucher reference when no description was given.
	if tx.Description == "" {
		tx.Description = voucher.FormatRef(voucher.NextSeq(existing, tx.Category), tx.Category)
	}

	if verrs := store.ValidateEntry(tx, e.categories); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := e.store.Append(tx); err != nil {
		return err
	}

	hash := ""
	if e.cfg.Git.AutoCommit && gitops.IsRepo(e.dir) {
		hash, err = gitops.CommitPaths(e.dir, "add: "+tx.Description,
			e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail, e.cfg.Ledger.DataFile)
		if err != nil {
			log.Warn().Err(err).Msg("auto-commit failed")
			hash = ""
		}
	}

	actor := tx.Cashier
	if actor == "" {
		actor = e.cfg.Git.AuthorName
	}
	entry := auditlog.Entry{
		Timestamp:  time.Now(),
		Actor:      actor,
		Action:     "add",
		Ref:        tx.Description,
		Details:    fmt.Sprintf("%s UMK=%s SPJ=%s", tx.Category, tx.Disbursement, tx.Settlement),
		CommitHash: hash,
	}
	if err := auditlog.Append(e.dir, []auditlog.Entry{entry}); err != nil {
		log.Warn().Err(err).Msg("failed to write audit log")
	}

	fmt.Printf("Recorded %s\n", tx.Description)
	return nil
}
