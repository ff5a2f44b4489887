package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/currency"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func newCurrencyCommand(opts *appOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Show the active display currency",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			c := app.ledger.Currency()
			fmt.Printf("Code:     %s\n", c.Code)
			fmt.Printf("Symbol:   %s\n", c.Symbol)
			fmt.Printf("Locale:   %s\n", c.Locale)
			fmt.Printf("Position: %s\n", c.SymbolPosition)
			return nil
		},
	}
	cmd.AddCommand(newCurrencySetCommand(opts), newCurrencyListCommand(opts))
	return cmd
}

func newCurrencySetCommand(opts *appOptions) *cobra.Command {
	var code, symbol string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the display currency",
		RunE: func(cmd *cobra.Command, args []string) error {
			if code == "" && symbol == "" {
				return fmt.Errorf("nothing to set: pass --code and/or --symbol")
			}

			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			app.ledger.SetCurrency(model.CurrencySettings{Code: code, Symbol: symbol})

			c := app.ledger.Currency()
			sample := currency.NewFormatter(c).Format(decimal.RequireFromString("12.34"))
			fmt.Printf("Currency set to %s (%s), e.g. %s\n", c.Code, c.Symbol, sample)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "ISO 4217 code, e.g. USD or EUR")
	cmd.Flags().StringVar(&symbol, "symbol", "", "display symbol, e.g. $ or kr")

	return cmd
}

func newCurrencyListCommand(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available currency presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tSYMBOL\tNAME\tLOCALE\tPOSITION")
			for _, p := range model.CurrencyPresets() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.Code, p.Symbol, p.Name, p.Locale, model.PositionForLocale(p.Locale))
			}
			return w.Flush()
		},
	}
}
