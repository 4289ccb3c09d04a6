package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date        string
		tod         string
		description string
		clr         string
		rec         recurrenceFlags
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new event",
		Long: `Add a new event to the calendar.

If another event already occupies the same date and time you are asked
to confirm before the event is created.`,
		Example: `  eventcal add "Dentist" --date=2025-03-05 --time=14:00
  eventcal add "Standup" --time=09:00 --repeat=weekly --days=mon,wed
  eventcal add "Rent" --date=2025-01-31 --time=10:00 --repeat=monthly
  eventcal add "Review" --time=17:00 --repeat=custom --every=2 --unit=weeks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recurrence, err := rec.parse()
			if err != nil {
				return err
			}
			if clr == "" {
				clr = a.config.Calendar.DefaultColor
			}

			ev, err := event.New(args[0], date, tod, description, clr, recurrence)
			if err != nil {
				return err
			}

			res, err := a.controller().Create(cmd.Context(), *ev)
			if err != nil {
				return err
			}
			if !res.Committed {
				fmt.Println("Not created.")
				return nil
			}

			fmt.Printf("Created event %s: %s %s %s\n",
				shortID(res.Event.ID),
				res.Event.Title,
				dateutil.FormatDate(res.Event.Date),
				res.Event.Time,
			)
			if r := describeRecurrence(res.Event.Recurrence); r != "" {
				fmt.Printf("Repeats %s\n", r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&tod, "time", "", "Time of day (HH:MM, required)")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&clr, "color", "", "Event color (default: from config)")
	rec.register(cmd)

	_ = cmd.MarkFlagRequired("time")

	return cmd
}
