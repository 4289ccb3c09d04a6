package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/recur"
)

func (a *App) listCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List occurrences in a date range",
		Long: `List every occurrence within a date range, including the ones
generated by recurrence rules.

Without flags the current month is listed. With only --from the single
day is listed.`,
		Example: `  eventcal list
  eventcal list --from=2025-01-15
  eventcal list --from=2025-01-15 --to=2025-01-20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			var start, end time.Time
			switch {
			case from == "" && to == "":
				start, end = dateutil.MonthRange(time.Now())
			case to == "":
				d, err := dateutil.ParseDate(from)
				if err != nil {
					return err
				}
				start, end = d, d
			default:
				var err error
				if start, err = dateutil.ParseDate(from); err != nil {
					return err
				}
				if end, err = dateutil.ParseDate(to); err != nil {
					return err
				}
			}

			occs := recur.ExpandAll(a.store.Snapshot(), start, end)
			if len(occs) == 0 {
				fmt.Println("No events in the specified date range.")
				return nil
			}
			printOccurrences(occs)
			if a.store.Degraded() {
				fmt.Println(colorWarn.Sprint("\nStorage is unavailable, changes will not survive this session."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD, defaults to start of this month)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, defaults to the from date)")

	return cmd
}
