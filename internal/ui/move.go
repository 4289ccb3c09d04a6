package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
)

func (a *App) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <event-id> <when>",
		Short: "Move an event to another date",
		Long: `Move an event to another date, keeping its time of day. Recurring
events shift their whole series.

The target may be an absolute date, "today", "tomorrow", or a weekday
name meaning the next such weekday.`,
		Example: `  eventcal move 3f2a 2025-03-12
  eventcal move 3f2a tomorrow
  eventcal move 3f2a friday`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := a.resolveID(args[0])
			if err != nil {
				return err
			}

			newDate, err := dateutil.ParseRelativeDate(args[1], time.Now())
			if err != nil {
				return err
			}

			res, err := a.controller().Reschedule(cmd.Context(), ev.ID, newDate)
			if err != nil {
				return err
			}
			if !res.Committed {
				fmt.Println("Not moved.")
				return nil
			}
			fmt.Printf("Moved event %s: %s → %s\n",
				shortID(ev.ID), ev.Title, dateutil.FormatDate(res.Event.Date))
			return nil
		},
	}
}
