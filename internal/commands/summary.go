package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
)

func newSummaryCommand(opts *appOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show overall spending statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			txns := app.ledger.All()
			s := aggregate.Summarize(txns)
			b := aggregate.BudgetStatusAt(txns, app.ledger.Budget(), time.Now())

			fmt.Printf("Transactions:    %d\n", s.TransactionCount)
			fmt.Printf("Total spent:     %s\n", app.money.Format(s.TotalSpent))
			fmt.Printf("Daily average:   %s\n", app.money.Format(s.DailyAverage))
			fmt.Printf("Biggest expense: %s\n", app.money.Format(s.BiggestExpense))
			fmt.Println()
			fmt.Printf("This month: %s of %s (%.1f%%), %s remaining\n",
				app.money.Format(b.Spent),
				app.money.Format(b.Budget),
				b.Percent,
				app.money.Format(b.Remaining),
			)
			return nil
		},
	}
	return cmd
}
