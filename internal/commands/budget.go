package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
)

func newBudgetCommand(opts *appOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show budget status for the current month",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			b := aggregate.BudgetStatusAt(app.ledger.All(), app.ledger.Budget(), time.Now())
			fmt.Printf("Budget:    %s\n", app.money.Format(b.Budget))
			fmt.Printf("Spent:     %s (%.1f%%)\n", app.money.Format(b.Spent), b.Percent)
			fmt.Printf("Remaining: %s\n", app.money.Format(b.Remaining))
			return nil
		},
	}
	cmd.AddCommand(newBudgetSetCommand(opts))
	return cmd
}

func newBudgetSetCommand(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing budget %q: %w", args[0], err)
			}
			if !amount.IsPositive() {
				return fmt.Errorf("budget must be positive, got %s", args[0])
			}

			app.ledger.SetBudget(amount)
			fmt.Printf("Monthly budget set to %s\n", app.money.Format(amount))
			return nil
		},
	}
}
