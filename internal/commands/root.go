package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasva-dev/kasva/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "kasva",
		Short:   "Cash-flow ledger for office disbursements and settlements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newDeadlinesCommand())

	return rootCmd
}
