// Package commands defines the pennywise CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var dataDir, backend, logLevel string

	rootCmd := &cobra.Command{
		Use:     "pennywise",
		Short:   "Local-first personal expense tracking",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDir, "data-dir", "", "data directory (overrides PENNYWISE_DATA_DIR)")
	flags.StringVar(&backend, "backend", "", "storage backend: file, sqlite, or memory (overrides PENNYWISE_BACKEND)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides PENNYWISE_LOG_LEVEL)")

	opts := &appOptions{dataDir: &dataDir, backend: &backend, logLevel: &logLevel}

	rootCmd.AddCommand(
		newAddCommand(opts),
		newListCommand(opts),
		newUpdateCommand(opts),
		newDeleteCommand(opts),
		newSummaryCommand(opts),
		newReportCommand(opts),
		newBudgetCommand(opts),
		newCurrencyCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
		newClearCommand(opts),
	)

	return rootCmd
}
