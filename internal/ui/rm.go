package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <event-id>",
		Short: "Delete an event",
		Long: `Delete an event. Recurring events lose every occurrence, past and
future. Asks for confirmation unless --yes is given.`,
		Example: `  eventcal rm 3f2a`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := a.resolveID(args[0])
			if err != nil {
				return err
			}

			res, err := a.controller().Delete(cmd.Context(), ev.ID)
			if err != nil {
				return err
			}
			if !res.Committed {
				fmt.Println("Not deleted.")
				return nil
			}
			fmt.Printf("Deleted event %s: %s\n", shortID(ev.ID), ev.Title)
			return nil
		},
	}
}
