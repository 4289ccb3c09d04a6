package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nikhitha35/eventcal/internal/ics"
)

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import events from an iCalendar file",
		Long: `Import events from an iCalendar (.ics) file.

Each imported event goes through the normal scheduling path, so slot
conflicts with existing events prompt for confirmation. Events that the
calendar cannot represent (e.g. yearly recurrences) are skipped.`,
		Example: `  eventcal import calendar.ics
  eventcal import --yes calendar.ics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			events, err := ics.Import(f)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No importable events found.")
				return nil
			}

			ctrl := a.controller()
			created, skipped := 0, 0
			for _, ev := range events {
				if ev.Color == "" {
					ev.Color = a.config.Calendar.DefaultColor
				}
				res, err := ctrl.Create(cmd.Context(), ev)
				if err != nil {
					return fmt.Errorf("importing %q: %w", ev.Title, err)
				}
				if res.Committed {
					created++
				} else {
					skipped++
				}
			}

			fmt.Printf("Imported %d events", created)
			if skipped > 0 {
				fmt.Printf(", skipped %d", skipped)
			}
			fmt.Println()
			return nil
		},
	}
}
