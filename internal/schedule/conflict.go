// Package schedule detects time-slot collisions and orchestrates event
// mutations behind confirmation prompts.
package schedule

import (
	"time"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
	"github.com/Nikhitha35/eventcal/internal/recur"
)

// FindConflict materializes every event except candidateID onto day and
// returns the first occurrence sharing the exact hour:minute with
// timeOfDay. Side-effect free; recurring events conflict through their
// generated occurrences, not just their anchors.
func FindConflict(day time.Time, candidateID, timeOfDay string, events []event.Event) (event.Occurrence, bool) {
	day = dateutil.TruncateToDay(day)
	slot := event.Occurrence{Event: event.Event{Time: timeOfDay}, On: day}
	for _, ev := range events {
		if ev.ID == candidateID {
			continue
		}
		for _, occ := range recur.Expand(ev, day, day) {
			if occ.SameSlot(slot) {
				return occ, true
			}
		}
	}
	return event.Occurrence{}, false
}

// HasConflict reports whether any other event occupies the same slot.
func HasConflict(day time.Time, candidateID, timeOfDay string, events []event.Event) bool {
	_, found := FindConflict(day, candidateID, timeOfDay, events)
	return found
}
