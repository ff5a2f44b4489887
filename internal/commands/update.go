package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func newUpdateCommand(opts *appOptions) *cobra.Command {
	var amountStr, categoryStr, description, dateStr string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			var patch ledger.Patch
			if cmd.Flags().Changed("amount") {
				amount, err := decimal.NewFromString(amountStr)
				if err != nil {
					return fmt.Errorf("parsing amount %q: %w", amountStr, err)
				}
				if !amount.IsPositive() {
					return model.ErrNonPositiveAmount
				}
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				category, ok := app.cats.Normalize(categoryStr)
				if !ok {
					return fmt.Errorf("unknown category %q", categoryStr)
				}
				patch.Category = &category
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("date") {
				date, err := time.Parse(model.DateFormat, dateStr)
				if err != nil {
					return fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", dateStr, err)
				}
				patch.Date = &date
			}

			updated, ok := app.ledger.Update(args[0], patch)
			if !ok {
				return fmt.Errorf("transaction %s not found", args[0])
			}
			fmt.Printf("Updated %s  %s  %s\n",
				updated.DateString(),
				app.money.Format(updated.Amount),
				updated.Description,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&categoryStr, "category", "", "new category")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&dateStr, "date", "", "new date (YYYY-MM-DD)")

	return cmd
}
