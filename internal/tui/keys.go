package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/schedule"
	"github.com/Nikhitha35/eventcal/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.mode)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)
	switch m.mode {
	case ModeForm:
		model, cmd = m.handleFormKeys(msg)
	case ModeDetail:
		model, cmd = m.handleDetailKeys(msg)
	case ModeConfirm:
		model, cmd = m.handleConfirmKeys(msg)
	case ModeMove:
		model, cmd = m.handleMoveKeys(msg)
	default:
		model, cmd = m.handleNormalKeys(msg)
	}
	if next, ok := model.(Model); ok {
		LogModeChange(m.mode, next.mode, msg.String())
	}
	return model, cmd
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, model, cmd := m.handleNavKeys(msg); handled {
		return model, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if occs := m.occurrencesOn(m.cursor); len(occs) > 1 {
			m.eventIdx = (m.eventIdx + 1) % len(occs)
		}
		return m, nil

	case "n":
		m.mode = ModeForm
		m.form.reset(m.cursor)
		return m, textinput.Blink

	case "enter":
		if occ, ok := m.selectedOccurrence(); ok {
			m.mode = ModeDetail
			m.detail = &occ
			return m, nil
		}
		m.mode = ModeForm
		m.form.reset(m.cursor)
		return m, textinput.Blink

	case "e":
		return m.openEdit()

	case "d":
		return m.openDeleteConfirm()

	case "m":
		return m.pickUp()
	}

	return m, nil
}

// handleNavKeys handles cursor movement shared between normal and move
// mode. Crossing out of the displayed month flips the month and
// reloads the grid.
func (m Model) handleNavKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	var delta int
	switch msg.String() {
	case "h", "left":
		delta = -1
	case "l", "right":
		delta = 1
	case "j", "down":
		delta = 7
	case "k", "up":
		delta = -7
	case "[", "pgup":
		m.cursor = dateutil.AddMonthsClamped(m.cursor, -1)
		return true, m, m.setMonth(m.cursor)
	case "]", "pgdown":
		m.cursor = dateutil.AddMonthsClamped(m.cursor, 1)
		return true, m, m.setMonth(m.cursor)
	case "t":
		m.cursor = dateutil.TruncateToDay(timeNow())
		m.eventIdx = 0
		if m.cursor.Month() != m.month.Month() || m.cursor.Year() != m.month.Year() {
			return true, m, m.setMonth(m.cursor)
		}
		return true, m, nil
	default:
		return false, m, nil
	}

	m.cursor = m.cursor.AddDate(0, 0, delta)
	m.eventIdx = 0
	if m.cursor.Month() != m.month.Month() || m.cursor.Year() != m.month.Year() {
		return true, m, m.setMonth(m.cursor)
	}
	return true, m, nil
}

// openEdit opens the form for the occurrence under the cursor. Editing
// an occurrence edits its whole series.
func (m Model) openEdit() (tea.Model, tea.Cmd) {
	occ, ok := m.selectedOccurrence()
	if !ok {
		m.statusMsg = "No event selected"
		return m, nil
	}
	ev, ok := m.store.Get(occ.ID)
	if !ok {
		m.statusMsg = "Event no longer exists"
		return m, m.reload()
	}
	m.mode = ModeForm
	m.detail = nil
	m.form.prefill(ev)
	return m, textinput.Blink
}

// openDeleteConfirm asks before deleting the selected event.
func (m Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	occ, ok := m.selectedOccurrence()
	if !ok {
		m.statusMsg = "No event selected"
		return m, nil
	}
	m.mode = ModeConfirm
	m.detail = nil
	if occ.Recurrence.IsRecurring() {
		m.confirmMessage = fmt.Sprintf("Delete %q and all its occurrences?", occ.Title)
	} else {
		m.confirmMessage = fmt.Sprintf("Delete %q?", occ.Title)
	}
	m.pending = commands.DeleteEvent(m.ctrl, occ.ID)
	return m, nil
}

// pickUp starts carrying the selected event to a new date.
func (m Model) pickUp() (tea.Model, tea.Cmd) {
	occ, ok := m.selectedOccurrence()
	if !ok {
		m.statusMsg = "No event to move"
		return m, nil
	}
	m.mode = ModeMove
	m.detail = nil
	m.movingID = occ.ID
	m.movingTitle = occ.Title
	m.moveFrom = m.cursor
	m.statusMsg = fmt.Sprintf("Moving %q (Enter to drop, Esc to cancel)", occ.Title)
	return m, nil
}

// handleMoveKeys handles keys while carrying an event.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, model, cmd := m.handleNavKeys(msg); handled {
		return model, cmd
	}

	switch msg.String() {
	case "esc":
		m.cursor = m.moveFrom
		m.statusMsg = "Move cancelled"
		return m.exitMove(), nil

	case "enter":
		return m.dropEvent()
	}

	return m, nil
}

// dropEvent commits the carried event onto the cursor day, asking
// first when the target slot is taken.
func (m Model) dropEvent() (tea.Model, tea.Cmd) {
	ev, ok := m.store.Get(m.movingID)
	if !ok {
		m.statusMsg = "Event no longer exists"
		return m.exitMove(), m.reload()
	}

	target := m.cursor
	cmd := commands.RescheduleEvent(m.ctrl, ev.ID, target)
	if occ, found := schedule.FindConflict(target, ev.ID, ev.Time, m.store.Snapshot()); found {
		next := m.exitMove()
		next.mode = ModeConfirm
		next.confirmMessage = fmt.Sprintf("%s. Move %q there anyway?", occ, ev.Title)
		next.pending = cmd
		return next, nil
	}
	return m.exitMove(), cmd
}

func (m Model) exitMove() Model {
	m.mode = ModeNormal
	m.movingID = ""
	m.movingTitle = ""
	return m
}

// handleDetailKeys handles keys in the event detail modal.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.mode = ModeNormal
		m.detail = nil
		return m, nil
	case "e":
		return m.openEdit()
	case "d":
		return m.openDeleteConfirm()
	case "m":
		return m.pickUp()
	}
	return m, nil
}

// handleConfirmKeys handles keys in the confirm modal.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		cmd := m.pending
		m.pending = nil
		m.confirmMessage = ""
		m.mode = ModeNormal
		return m, cmd
	case "n", "esc", "q":
		m.pending = nil
		m.confirmMessage = ""
		m.mode = ModeNormal
		m.statusMsg = "Cancelled"
		return m, nil
	}
	return m, nil
}

// handleFormKeys handles keys in the event form modal.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil

	case "tab", "down":
		m.form.next()
		return m, nil

	case "shift+tab", "up":
		m.form.prev()
		return m, nil

	case "enter":
		if m.form.focus < fieldCount-1 {
			m.form.next()
			return m, nil
		}
		return m.submitForm()

	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// submitForm validates the form and commits, asking first when the
// slot is taken by another event.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	ev, err := m.form.buildEvent()
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	var verb string
	if ev.ID == "" {
		cmd = commands.CreateEvent(m.ctrl, ev)
		verb = "create"
	} else {
		cmd = commands.UpdateEvent(m.ctrl, ev)
		verb = "save"
	}

	if occ, found := schedule.FindConflict(ev.Date, ev.ID, ev.Time, m.store.Snapshot()); found {
		m.mode = ModeConfirm
		m.confirmMessage = fmt.Sprintf("%s. %s %q anyway?", occ, titleCase(verb), ev.Title)
		m.pending = cmd
		return m, nil
	}

	m.mode = ModeNormal
	return m, cmd
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// timeNow is swapped in tests.
var timeNow = func() time.Time { return time.Now() }
