package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand(opts *appOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every expense and reset the budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the ledger without --yes")
			}

			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			app.ledger.Clear()
			fmt.Println("Ledger cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")

	return cmd
}
