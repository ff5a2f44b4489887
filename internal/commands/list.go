package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/ledger"
)

func newListCommand(opts *appOptions) *cobra.Command {
	var categoryStr, month, from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
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

			txns := app.ledger.Query(filters)
			if len(txns) == 0 {
				fmt.Println("No expenses found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION\tID")
			for _, t := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.DateString(),
					app.money.Format(t.Amount),
					app.cats.DisplayName(t.Category),
					t.Description,
					t.ID,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&categoryStr, "category", "", "only this category")
	cmd.Flags().StringVar(&month, "month", "", "only this month (YYYY-MM)")
	cmd.Flags().StringVar(&from, "from", "", "on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "on or before this date (YYYY-MM-DD)")

	return cmd
}