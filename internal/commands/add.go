package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/model"
)

func newAddCommand(opts *appOptions) *cobra.Command {
	var amountStr, categoryStr, description, dateStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}
			if !amount.IsPositive() {
				return model.ErrNonPositiveAmount
			}

			category, ok := app.cats.Normalize(categoryStr)
			if !ok {
				return fmt.Errorf("unknown category %q (run 'pennywise report category' for the list)", categoryStr)
			}

			if strings.TrimSpace(description) == "" {
				return model.ErrEmptyDescription
			}

			txn := model.Transaction{
				Amount:      amount,
				Category:    category,
				Description: description,
			}
			if dateStr != "" {
				date, err := time.Parse(model.DateFormat, dateStr)
				if err != nil {
					return fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", dateStr, err)
				}
				txn.Date = date
			}

			stored := app.ledger.Add(txn)
			fmt.Printf("Added %s  %s  %s  (%s)\n",
				stored.DateString(),
				app.money.Format(stored.Amount),
				stored.Description,
				stored.ID,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "expense amount (required)")
	cmd.Flags().StringVar(&categoryStr, "category", "", "expense category (required)")
	cmd.Flags().StringVar(&description, "description", "", "what the money went on (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
