// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
	"github.com/Nikhitha35/eventcal/internal/recur"
	"github.com/Nikhitha35/eventcal/internal/schedule"
	"github.com/Nikhitha35/eventcal/internal/store"
)

// GridLoadedMsg is sent when the occurrences for the visible grid are
// materialized.
type GridLoadedMsg struct {
	Start       time.Time
	End         time.Time
	Occurrences []event.Occurrence
}

// MutationDoneMsg is sent when a controller operation finishes.
type MutationDoneMsg struct {
	Result schedule.Result
	Verb   string // "Created", "Saved", "Deleted", "Moved"
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadGrid expands every event over the month grid containing month,
// padded to whole weeks starting on weekStart.
func LoadGrid(st *store.Store, month time.Time, weekStart time.Weekday) tea.Cmd {
	return func() tea.Msg {
		start, end := dateutil.GridRange(month, weekStart)
		occs := recur.ExpandAll(st.Snapshot(), start, end)
		return GridLoadedMsg{Start: start, End: end, Occurrences: occs}
	}
}

// CreateEvent commits a new event. Conflicts were already confirmed in
// the UI, so the controller runs with an always-yes decider.
func CreateEvent(ctrl *schedule.Controller, ev event.Event) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Create(context.Background(), ev)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return MutationDoneMsg{Result: res, Verb: "Created"}
	}
}

// UpdateEvent commits changes to an existing event.
func UpdateEvent(ctrl *schedule.Controller, ev event.Event) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Update(context.Background(), ev)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return MutationDoneMsg{Result: res, Verb: "Saved"}
	}
}

// DeleteEvent removes an event and all of its occurrences.
func DeleteEvent(ctrl *schedule.Controller, id string) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Delete(context.Background(), id)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return MutationDoneMsg{Result: res, Verb: "Deleted"}
	}
}

// RescheduleEvent moves an event's anchor to newDate.
func RescheduleEvent(ctrl *schedule.Controller, id string, newDate time.Time) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Reschedule(context.Background(), id, newDate)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return MutationDoneMsg{Result: res, Verb: "Moved"}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
