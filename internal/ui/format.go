package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
)

// describeRecurrence renders a recurrence in short human form, e.g.
// "weekly on Mon, Wed" or "every 2 weeks until 2025-06-01".
func describeRecurrence(r event.Recurrence) string {
	var s string
	switch r.Kind {
	case event.KindDaily:
		s = "daily"
	case event.KindWeekly:
		if len(r.WeeklyDays) == 0 {
			s = "weekly"
		} else {
			days := append([]time.Weekday(nil), r.WeeklyDays...)
			sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
			names := make([]string, len(days))
			for i, d := range days {
				names[i] = d.String()[:3]
			}
			s = "weekly on " + strings.Join(names, ", ")
		}
	case event.KindMonthly:
		s = "monthly"
	case event.KindCustom:
		s = fmt.Sprintf("every %d %s", r.Interval, unitNoun(r.Unit, r.Interval))
	default:
		return ""
	}
	if r.End != nil {
		s += " until " + dateutil.FormatDate(*r.End)
	}
	return s
}

func unitNoun(u event.Unit, n int) string {
	var noun string
	switch u {
	case event.UnitWeekly:
		noun = "week"
	case event.UnitMonthly:
		noun = "month"
	default:
		noun = "day"
	}
	if n != 1 {
		noun += "s"
	}
	return noun
}

// printOccurrences prints occurrences grouped by date. Occurrences are
// expected sorted by date and time.
func printOccurrences(occs []event.Occurrence) {
	width := termWidth()
	var currentDate string
	for _, occ := range occs {
		date := dateutil.FormatDate(occ.On)
		if date != currentDate {
			if currentDate != "" {
				fmt.Println()
			}
			fmt.Printf("%s %s\n", colorHeader.Sprintf("=== %s ===", date), colorMuted.Sprint(occ.On.Weekday().String()))
			currentDate = date
		}

		marker := " "
		if occ.IsRecurrence {
			marker = colorRecur.Sprint("↻")
		}
		line := fmt.Sprintf("  %s %s %s", marker, occ.Time, colorTitle.Sprint(occ.Title))
		if rec := describeRecurrence(occ.Recurrence); rec != "" {
			line += " " + colorMuted.Sprintf("(%s)", rec)
		}
		if occ.Description != "" {
			line += " " + colorMuted.Sprint(truncate(occ.Description, width/3))
		}
		fmt.Println(line)
	}
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// shortID returns the leading segment of a UUID, enough to identify an
// event in everyday use.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// resolveID finds the stored event whose id starts with prefix. The
// prefix must match exactly one event.
func (a *App) resolveID(prefix string) (event.Event, error) {
	var matches []event.Event
	for _, ev := range a.store.Snapshot() {
		if strings.HasPrefix(ev.ID, prefix) {
			matches = append(matches, ev)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return event.Event{}, fmt.Errorf("event %s: %w", prefix, event.ErrNotFound)
	default:
		return event.Event{}, fmt.Errorf("id %q matches %d events, use a longer prefix", prefix, len(matches))
	}
}
