package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
	"github.com/Nikhitha35/eventcal/internal/tui/commands"
)

const statusLifetime = 4 * time.Second

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case commands.GridLoadedMsg:
		m.loading = false
		m.gridStart = msg.Start
		m.gridEnd = msg.End
		m.byDay = groupByDay(msg.Occurrences)
		if occs := m.occurrencesOn(m.cursor); m.eventIdx >= len(occs) {
			m.eventIdx = 0
		}
		return m, nil

	case commands.MutationDoneMsg:
		m.statusMsg = fmt.Sprintf("%s %q", msg.Verb, msg.Result.Event.Title)
		return m, tea.Batch(m.reload(), commands.ClearStatusAfter(statusLifetime))

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		return m, tea.Batch(m.reload(), commands.ClearStatusAfter(statusLifetime))

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.err = nil
		return m, nil
	}

	return m, nil
}

// groupByDay indexes occurrences by their formatted date. Input order
// is preserved, which keeps each day sorted by time.
func groupByDay(occs []event.Occurrence) map[string][]event.Occurrence {
	byDay := make(map[string][]event.Occurrence)
	for _, occ := range occs {
		key := dateutil.FormatDate(occ.On)
		byDay[key] = append(byDay[key], occ)
	}
	return byDay
}
