package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pennywise-dev/pennywise/internal/codec"
	"github.com/pennywise-dev/pennywise/internal/ledger"
)

func newExportCommand(opts *appOptions) *cobra.Command {
	var format, out, categoryStr, month, from, to string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as JSON or CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			filters := ledger.Filters{
				Month:     month,
				StartDate: from,
				EndDate:   to,
			}
			if categoryStr != "" {
				category, ok := app.cats.Normalize(categoryStr)
				if !ok {
					return fmt.Errorf("unknown category %q", categoryStr)
				}
				filters.Category = category
			}

			now := time.Now()
			switch format {
			case "json":
				return writeExport(out, func(f *os.File) error {
					return codec.ExportJSON(f, app.ledger, now)
				})
			case "csv":
				return writeExport(out, func(f *os.File) error {
					return codec.ExportCSV(f, app.ledger.Query(filters))
				})
			case "all":
				if out == "" {
					return fmt.Errorf("--format all needs --out as a base path")
				}
				var g errgroup.Group
				g.Go(func() error {
					return writeExport(out+".json", func(f *os.File) error {
						return codec.ExportJSON(f, app.ledger, now)
					})
				})
				g.Go(func() error {
					return writeExport(out+".csv", func(f *os.File) error {
						return codec.ExportCSV(f, app.ledger.Query(filters))
					})
				})
				return g.Wait()
			default:
				return fmt.Errorf("unknown format %q: must be json, csv, or all", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "export format: json, csv, or all")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout; base path for --format all)")
	cmd.Flags().StringVar(&categoryStr, "category", "", "CSV only: filter by category")
	cmd.Flags().StringVar(&month, "month", "", "CSV only: filter by month (YYYY-MM)")
	cmd.Flags().StringVar(&from, "from", "", "CSV only: on or after this date")
	cmd.Flags().StringVar(&to, "to", "", "CSV only: on or before this date")

	return cmd
}

// writeExport runs write against path, or stdout when path is empty.
func writeExport(path string, write func(*os.File) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
