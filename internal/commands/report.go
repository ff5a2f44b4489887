package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func newReportCommand(opts *appOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending breakdowns",
	}
	cmd.AddCommand(
		newReportCategoryCommand(opts),
		newReportMonthlyCommand(opts),
		newReportTrendCommand(opts),
	)
	return cmd
}

func newReportCategoryCommand(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "category",
		Short: "Totals per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			totals := aggregate.ByCategory(app.ledger.All())

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, category := range model.Categories() {
				total, ok := totals[category]
				if !ok {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", app.cats.DisplayName(category), app.money.Format(total))
			}
			return w.Flush()
		},
	}
}

func newReportMonthlyCommand(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Totals per month",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			totals := aggregate.ByMonth(app.ledger.All())
			months := make([]string, 0, len(totals))
			for month := range totals {
				months = append(months, month)
			}
			sort.Strings(months)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, month := range months {
				fmt.Fprintf(w, "%s\t%s\n", month, app.money.Format(totals[month]))
			}
			return w.Flush()
		},
	}
}

func newReportTrendCommand(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Daily spending over the last 30 days with a 7-day moving average",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			points := aggregate.DailyTrend(app.ledger.All(), time.Now())

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tSPENT\t7-DAY AVG")
			for _, p := range points {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					p.Date.Format(model.DateFormat),
					app.money.Format(p.Amount),
					app.money.Format(p.Average),
				)
			}
			return w.Flush()
		},
	}
}
