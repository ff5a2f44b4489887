package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand(opts *appOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			removed, ok := app.ledger.Delete(args[0])
			if !ok {
				return fmt.Errorf("transaction %s not found", args[0])
			}
			fmt.Printf("Deleted %s  %s  %s\n",
				removed.DateString(),
				app.money.Format(removed.Amount),
				removed.Description,
			)
			return nil
		},
	}
	return cmd
}
