package commands

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kasva-dev/kasva/internal/ledger"
	"github.com/kasva-dev/kasva/internal/logger"
	"github.com/kasva-dev/kasva/internal/model"
	"github.com/kasva-dev/kasva/internal/store"
)

const displayDateFormat = "02-01-2006"

func newReportCommand() *cobra.Command {
	var repoDir string
	var year int
	var category string
	var cashier string
	var fromStr string
	var toStr string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Running balances and totals for the filtered sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDateFlag("from", fromStr)
			if err != nil {
				return err
			}
			to, err := parseDateFlag("to", toStr)
			if err != nil {
				return err
			}

			return runReport(repoDir, ledger.Filter{
				Year:     year,
				Category: category,
				Cashier:  cashier,
				From:     from,
				To:       to,
			})
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "data directory")
	cmd.Flags().IntVar(&year, "year", 0, "filter by year")
	cmd.Flags().StringVar(&category, "category", "", "filter by category code")
	cmd.Flags().StringVar(&cashier, "cashier", "", "filter by cashier")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date, dd/mm/yyyy inclusive")
	cmd.Flags().StringVar(&toStr, "to", "", "end date, dd/mm/yyyy inclusive")

	return cmd
}

func runReport(dir string, filter ledger.Filter) error {
	log := logger.New()

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

	undated := 0
	for _, t := range txns {
		if !t.Dated() {
			undated++
		}
	}
	if undated > 0 {
		log.Warn().Int("rows", undated).Msg("rows without a parseable date sort last and get no deadline")
	}

	res, err := computeResult(e, filter, txns)
	if err != nil {
		return err
	}

	if len(res.Rows) == 0 {
		fmt.Println("No rows match the filter.")
		return nil
	}

	printStats(res)
	printGroups(res)
	printRows(res)
	return nil
}

func computeResult(e *env, filter ledger.Filter, txns []model.Transaction) (ledger.Result, error) {
	mode, err := e.cfg.Ledger.GroupMode()
	if err != nil {
		return ledger.Result{}, err
	}
	policy, err := e.cfg.Ledger.Policy()
	if err != nil {
		return ledger.Result{}, err
	}

	return ledger.Compute(filter.Apply(txns), ledger.Options{
		Mode:      mode,
		Policy:    policy,
		GraceDays: e.cfg.Ledger.GracePeriodDays,
	}), nil
}

func printStats(res ledger.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total UMK\t%s\n", formatRupiah(res.Totals.TotalDisbursement))
	fmt.Fprintf(w, "Total SPJ\t%s\n", formatRupiah(res.Totals.TotalSettlement))
	fmt.Fprintf(w, "Realisasi SPJ\t%s\n", formatPercent(res.Totals.Realization))
	fmt.Fprintf(w, "Sisa Akhir\t%s\n", formatRupiah(res.Totals.FinalBalance))
	w.Flush()
	fmt.Println()
}

func printGroups(res ledger.Result) {
	if len(res.Groups) < 2 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tUMK\tSPJ\tREALISASI\tSISA")
	for _, g := range res.Groups {
		label := g.Category
		if g.Cashier != "" {
			label += "/" + g.Cashier
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			label,
			formatRupiah(g.TotalDisbursement),
			formatRupiah(g.TotalSettlement),
			formatPercent(g.Realization),
			formatRupiah(g.FinalBalance))
	}
	w.Flush()
	fmt.Println()
}

func printRows(res ledger.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCATEGORY\tCASHIER\tDESCRIPTION\tUMK\tSPJ\tBALANCE")
	for _, r := range res.Rows {
		dateStr := ""
		if r.Dated() {
			dateStr = r.Date.Format(displayDateFormat)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			dateStr, r.Category, r.Cashier, r.Description,
			formatRupiah(r.Disbursement),
			formatRupiah(r.Settlement),
			formatRupiah(r.Balance))
	}
	w.Flush()
}
