package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
)

// recurrenceFlags collects the repeat-related flags shared by add and
// edit.
type recurrenceFlags struct {
	repeat string
	days   string
	every  int
	unit   string
	until  string
}

func (f *recurrenceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.repeat, "repeat", "none", "Repeat: none, daily, weekly, monthly or custom")
	cmd.Flags().StringVar(&f.days, "days", "", "Weekdays for --repeat=weekly (e.g. mon,wed)")
	cmd.Flags().IntVar(&f.every, "every", 1, "Interval for --repeat=custom")
	cmd.Flags().StringVar(&f.unit, "unit", "days", "Interval unit for --repeat=custom: days, weeks or months")
	cmd.Flags().StringVar(&f.until, "until", "", "Last date the event repeats before (YYYY-MM-DD, exclusive)")
}

func (f *recurrenceFlags) parse() (event.Recurrence, error) {
	var end *time.Time
	if f.until != "" {
		t, err := dateutil.ParseDate(f.until)
		if err != nil {
			return event.Recurrence{}, fmt.Errorf("invalid --until: %w", err)
		}
		end = &t
	}

	switch f.repeat {
	case "", "none":
		return event.None(), nil
	case "daily":
		return event.Daily(end), nil
	case "weekly":
		var days []time.Weekday
		if f.days != "" {
			var err error
			days, err = dateutil.ParseWeekdaySet(f.days)
			if err != nil {
				return event.Recurrence{}, fmt.Errorf("invalid --days: %w", err)
			}
		}
		return event.Weekly(days, end), nil
	case "monthly":
		return event.Monthly(end), nil
	case "custom":
		unit, err := parseUnit(f.unit)
		if err != nil {
			return event.Recurrence{}, err
		}
		return event.Custom(f.every, unit, end), nil
	default:
		return event.Recurrence{}, fmt.Errorf("repeat %q: %w", f.repeat, event.ErrInvalidKind)
	}
}

func parseUnit(s string) (event.Unit, error) {
	switch s {
	case "day", "days", "daily":
		return event.UnitDaily, nil
	case "week", "weeks", "weekly":
		return event.UnitWeekly, nil
	case "month", "months", "monthly":
		return event.UnitMonthly, nil
	default:
		return "", fmt.Errorf("unit %q: %w", s, event.ErrInvalidUnit)
	}
}
