package commands

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasva-dev/kasva/internal/ledger"
	"github.com/kasva-dev/kasva/internal/store"
)

func newDeadlinesCommand() *cobra.Command {
	var repoDir string
	var category string
	var cashier string
	var asOfStr string

	cmd := &cobra.Command{
		Use:   "deadlines",
		Short: "Outstanding disbursements and their settlement due dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateFlag("as-of", asOfStr)
			if err != nil {
				return err
			}
			if asOf.IsZero() {
				asOf = time.Now()
			}

			return runDeadlines(repoDir, ledger.Filter{Category: category, Cashier: cashier}, asOf)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "data directory")
	cmd.Flags().StringVar(&category, "category", "", "filter by category code")
	cmd.Flags().StringVar(&cashier, "cashier", "", "filter by cashier")
	cmd.Flags().StringVar(&asOfStr, "as-of", "", "reference date, dd/mm/yyyy (default today)")

	return cmd
}

func runDeadlines(dir string, filter ledger.Filter, asOf time.Time) error {
	e, err := loadEnv(dir)
	if err != nil {
		return err
	}

	txns, err := e.store.Load()
	if err != nil {
		var schemaErr *store.SchemaError
		if errors.As(err, &schemaErr) {
			return fmt.Errorf("cashflow sheet is malformed: %w", err)
		}
		return err
	}

	res, err := computeResult(e, filter, txns)
	if err != nil {
		return err
	}

	var due []ledger.Row
	for _, r := range res.Rows {
		if r.HasDeadline() {
			due = append(due, r)
		}
	}
	if len(due) == 0 {
		fmt.Println("No outstanding disbursements.")
		return nil
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate.Before(due[j].DueDate)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DUE\tDESCRIPTION\tCATEGORY\tCASHIER\tUMK\tDAYS LEFT\tSTATUS")
	for _, r := range due {
		daysLeft := ledger.DaysRemaining(r.DueDate, asOf)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			r.DueDate.Format(displayDateFormat),
			r.Description, r.Category, r.Cashier,
			formatRupiah(r.Disbursement),
			daysLeft,
			ledger.ClassifyUrgency(daysLeft))
	}
	w.Flush()
	return nil
}
