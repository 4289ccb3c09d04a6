package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
)

func (a *App) editCmd() *cobra.Command {
	var (
		title       string
		date        string
		tod         string
		description string
		clr         string
		rec         recurrenceFlags
	)

	cmd := &cobra.Command{
		Use:   "edit <event-id>",
		Short: "Edit an existing event",
		Long: `Edit an existing event. Only the flags you pass change; everything
else keeps its current value. The event id may be any unique prefix as
printed by add or shown in the month view.`,
		Example: `  eventcal edit 3f2a --time=15:00
  eventcal edit 3f2a --repeat=weekly --days=tue,thu`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := a.resolveID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				ev.Title = title
			}
			if flags.Changed("date") {
				d, err := dateutil.ParseDate(date)
				if err != nil {
					return err
				}
				ev.Date = d
			}
			if flags.Changed("time") {
				ev.Time = tod
			}
			if flags.Changed("desc") {
				ev.Description = description
			}
			if flags.Changed("color") {
				ev.Color = clr
			}
			if flags.Changed("repeat") || flags.Changed("days") || flags.Changed("every") ||
				flags.Changed("unit") || flags.Changed("until") {
				recurrence, err := rec.parse()
				if err != nil {
					return err
				}
				ev.Recurrence = recurrence
			}

			res, err := a.controller().Update(cmd.Context(), ev)
			if err != nil {
				return err
			}
			if !res.Committed {
				fmt.Println("Not saved.")
				return nil
			}

			fmt.Printf("Saved event %s: %s %s %s\n",
				shortID(res.Event.ID),
				res.Event.Title,
				dateutil.FormatDate(res.Event.Date),
				res.Event.Time,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&tod, "time", "", "New time of day (HH:MM)")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&clr, "color", "", "New color")
	rec.register(cmd)

	return cmd
}
