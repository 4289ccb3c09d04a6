// Package recur materializes recurring events into concrete occurrences
// within a visible date window.
package recur

import (
	"sort"
	"time"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
)

// DefaultHorizonMonths bounds unbounded recurrences: an event with no end
// date stops generating this many months past the query window's end.
const DefaultHorizonMonths = 6

// Expand materializes ev into the ordered sequence of occurrences whose
// dates fall within [windowStart, windowEnd], inclusive on both ends.
// Expansion is pure: calling it again with the same inputs yields the same
// sequence.
//
// The recurrence walk always starts at the anchor date. Dates before the
// window are skipped without being emitted but still consume steps, so the
// emitted dates stay phase-aligned with the anchor.
func Expand(ev event.Event, windowStart, windowEnd time.Time) []event.Occurrence {
	windowStart = dateutil.TruncateToDay(windowStart)
	windowEnd = dateutil.TruncateToDay(windowEnd)
	if windowEnd.Before(windowStart) {
		return nil
	}

	if !ev.Recurrence.IsRecurring() {
		anchor := dateutil.TruncateToDay(ev.Date)
		if anchor.Before(windowStart) || windowEnd.Before(anchor) {
			return nil
		}
		return []event.Occurrence{{Event: ev, On: anchor}}
	}

	// The horizon is exclusive: an end date equal to the cursor stops the
	// walk, so an end date on or before the anchor expands to nothing,
	// anchor included. This mirrors the stored end-date semantics rather
	// than treating the anchor as a special case.
	horizon := dateutil.AddMonthsClamped(windowEnd, DefaultHorizonMonths)
	if ev.Recurrence.End != nil {
		horizon = dateutil.TruncateToDay(*ev.Recurrence.End)
	}

	var out []event.Occurrence
	cursor := dateutil.TruncateToDay(ev.Date)
	for cursor.Before(horizon) {
		if cursor.Before(windowStart) {
			cursor = step(cursor, ev.Recurrence)
			continue
		}
		if windowEnd.Before(cursor) {
			break
		}
		out = append(out, event.Occurrence{Event: ev, On: cursor, IsRecurrence: true})
		cursor = step(cursor, ev.Recurrence)
	}
	return out
}

// step advances the cursor by one recurrence interval.
func step(cursor time.Time, r event.Recurrence) time.Time {
	switch r.Kind {
	case event.KindDaily:
		return cursor.AddDate(0, 0, 1)

	case event.KindWeekly:
		if len(r.WeeklyDays) == 0 {
			return cursor.AddDate(0, 0, 7)
		}
		// Scan forward to the next listed weekday. Terminates within 7
		// days since the set is non-empty.
		next := cursor.AddDate(0, 0, 1)
		for !r.OnWeekday(next.Weekday()) {
			next = next.AddDate(0, 0, 1)
		}
		return next

	case event.KindMonthly:
		// Clamped from the current cursor, not the anchor: once a step
		// lands on a clamped day (Jan 31 -> Feb 29) later steps keep that
		// day (-> Mar 29).
		return dateutil.AddMonthsClamped(cursor, 1)

	case event.KindCustom:
		interval := r.Interval
		if interval < 1 {
			interval = 1
		}
		switch r.Unit {
		case event.UnitDaily:
			return cursor.AddDate(0, 0, interval)
		case event.UnitWeekly:
			return cursor.AddDate(0, 0, 7*interval)
		case event.UnitMonthly:
			return dateutil.AddMonthsClamped(cursor, interval)
		default:
			// Unrecognized unit in stored data: fall back to daily.
			return cursor.AddDate(0, 0, 1)
		}

	default:
		return cursor.AddDate(0, 0, 1)
	}
}

// ExpandAll expands every event over the window and returns the combined
// occurrences ordered by date, then time of day, then title.
func ExpandAll(events []event.Event, windowStart, windowEnd time.Time) []event.Occurrence {
	var out []event.Occurrence
	for _, ev := range events {
		out = append(out, Expand(ev, windowStart, windowEnd)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].On.Equal(out[j].On) {
			return out[i].On.Before(out[j].On)
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// ForDay expands every event over a single-day window.
func ForDay(events []event.Event, day time.Time) []event.Occurrence {
	return ExpandAll(events, day, day)
}
