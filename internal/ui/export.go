package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nikhitha35/eventcal/internal/ics"
)

func (a *App) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the calendar as an iCalendar file",
		Long: `Export every event, including recurrence rules, as an iCalendar
(.ics) file that other calendar applications can read.

Without --output the calendar is written to stdout.`,
		Example: `  eventcal export --output=calendar.ics
  eventcal export > calendar.ics`,
		RunE: func(_ *cobra.Command, _ []string) error {
			payload, err := ics.Export(a.store.Snapshot())
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(payload)
				return nil
			}
			if err := os.WriteFile(output, []byte(payload), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("Exported %d events to %s\n", a.store.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
