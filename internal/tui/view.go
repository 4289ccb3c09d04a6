package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.loading && m.gridStart.IsZero() {
		return "Loading calendar..."
	}

	switch m.mode {
	case ModeForm:
		return m.placeModal(m.renderForm())
	case ModeConfirm:
		return m.placeModal(m.renderConfirm())
	case ModeDetail:
		return m.placeModal(m.renderDetail())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render(m.month.Format("January 2006"))
	var extras []string
	if m.mode == ModeMove {
		extras = append(extras, m.styles.WarningStyle.Render(fmt.Sprintf("moving %q", m.movingTitle)))
	}
	if m.store.Degraded() {
		extras = append(extras, m.styles.WarningStyle.Render("storage unavailable, in-memory only"))
	}
	if len(extras) == 0 {
		return title
	}
	return title + " " + strings.Join(extras, " ")
}

func (m Model) renderGrid() string {
	cellW := m.width/7 - 2
	if cellW < minCellWidth-2 {
		cellW = minCellWidth - 2
	}

	weeks := m.weekCount()
	contentLines := 3
	if weeks > 0 && m.height > 0 {
		if lines := (m.height-5)/weeks - 2; lines > contentLines {
			contentLines = lines
		}
	}

	var rows []string
	rows = append(rows, m.renderWeekdayRow(cellW))
	for week := m.gridStart; !week.After(m.gridEnd); week = week.AddDate(0, 0, 7) {
		cells := make([]string, 7)
		for i := 0; i < 7; i++ {
			cells[i] = m.renderCell(week.AddDate(0, 0, i), cellW, contentLines)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderWeekdayRow(cellW int) string {
	cells := make([]string, 7)
	for i := 0; i < 7; i++ {
		name := m.gridStart.AddDate(0, 0, i).Weekday().String()[:3]
		if cellW < 4 {
			name = name[:1]
		}
		cells[i] = m.styles.WeekdayStyle.Width(cellW + 2).Render(name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderCell(day time.Time, cellW, contentLines int) string {
	today := dateutil.SameDay(day, timeNow())
	selected := dateutil.SameDay(day, m.cursor)
	inMonth := day.Month() == m.month.Month()

	numStyle := m.styles.DayNumStyle
	if today {
		numStyle = m.styles.DayNumTodayStyle
	} else if !inMonth {
		numStyle = m.styles.DayNumMutedStyle
	}

	lines := []string{numStyle.Render(day.Format("2"))}
	occs := m.occurrencesOn(day)
	taken := slotConflicts(occs)
	visible := contentLines - 1
	for i, occ := range occs {
		if i == visible-1 && len(occs) > visible {
			lines = append(lines, m.styles.MoreStyle.Render(fmt.Sprintf("+%d more", len(occs)-i)))
			break
		}
		if i >= visible {
			break
		}
		lines = append(lines, m.renderEventLine(occ, cellW, selected && i == m.clampedIdx(occs), taken[occ.Time]))
	}
	for len(lines) < contentLines {
		lines = append(lines, "")
	}

	cell := m.styles.CellStyle
	if selected {
		cell = m.styles.CellSelectedStyle
	} else if today {
		cell = m.styles.CellTodayStyle
	}
	return cell.Width(cellW).Render(strings.Join(lines, "\n"))
}

// slotConflicts reports which times on a day hold more than one occurrence.
func slotConflicts(occs []event.Occurrence) map[string]bool {
	counts := make(map[string]int, len(occs))
	for _, occ := range occs {
		counts[occ.Time]++
	}
	taken := make(map[string]bool, len(counts))
	for tod, n := range counts {
		if n > 1 {
			taken[tod] = true
		}
	}
	return taken
}

func (m Model) renderEventLine(occ event.Occurrence, cellW int, selected, conflicted bool) string {
	text := occ.Time + " " + occ.Title
	if conflicted {
		text = "!" + text
	}
	text = truncateLine(text, cellW)
	switch {
	case m.mode == ModeMove && occ.ID == m.movingID:
		return m.styles.EventMovingStyle.Render(text)
	case selected:
		return m.styles.EventSelectedStyle.Render(text)
	case conflicted:
		return m.styles.EventConflictStyle.Render(text)
	default:
		return m.styles.EventStyle.Foreground(m.theme.EventColor(occ.Color)).Render(text)
	}
}

func (m Model) clampedIdx(occs []event.Occurrence) int {
	if m.eventIdx >= len(occs) {
		return len(occs) - 1
	}
	return m.eventIdx
}

func (m Model) renderFooter() string {
	var help string
	switch m.mode {
	case ModeMove:
		help = "hjkl move · enter drop · esc cancel"
	default:
		help = "hjkl navigate · [/] month · t today · n new · enter open · e edit · d delete · m move · tab cycle · q quit"
	}
	footer := m.styles.HelpStyle.Render(help)
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.err != nil {
			style = m.styles.WarningStyle
		}
		footer += "\n" + style.Render(m.statusMsg)
	}
	return footer
}

func (m Model) renderForm() string {
	var b strings.Builder
	title := "New event"
	if m.form.editingID != "" {
		title = "Edit event"
	}
	b.WriteString(m.styles.ModalTitleStyle.Render(title))
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		label := m.styles.ModalLabelStyle.Render(fieldLabels[i])
		if i == m.form.focus {
			label = m.styles.InputFocusStyle.Render(fieldLabels[i]) +
				strings.Repeat(" ", max(0, 12-len(fieldLabels[i])))
		}
		b.WriteString(label)
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ModalErrorStyle.Render(m.form.errMsg))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.ModalHintStyle.Render("tab next · enter submit on last field · ctrl+s save · esc cancel"))
	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("Confirm"))
	b.WriteString("\n\n")
	b.WriteString(m.confirmMessage)
	b.WriteString("\n\n")
	b.WriteString(m.styles.ConfirmYesStyle.Render("[y] yes"))
	b.WriteString("  ")
	b.WriteString(m.styles.ConfirmNoStyle.Render("[n] no"))
	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) renderDetail() string {
	if m.detail == nil {
		return ""
	}
	occ := m.detail
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render(occ.Title))
	b.WriteString("\n\n")
	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(m.styles.ModalLabelStyle.Render(label))
		b.WriteString(m.styles.DetailValueStyle.Render(value))
		b.WriteString("\n")
	}
	row("When", fmt.Sprintf("%s at %s", dateutil.FormatDate(occ.On), occ.Time))
	if occ.IsRecurrence {
		row("Series from", dateutil.FormatDate(occ.Date))
	}
	row("Repeats", recurrenceSummary(occ.Recurrence))
	row("Description", occ.Description)
	row("Color", occ.Color)
	b.WriteString("\n")
	b.WriteString(m.styles.ModalHintStyle.Render("e edit · d delete · m move · esc close"))
	return m.styles.ModalStyle.Render(b.String())
}

func recurrenceSummary(r event.Recurrence) string {
	switch r.Kind {
	case event.KindDaily:
		return "daily"
	case event.KindWeekly:
		if len(r.WeeklyDays) == 0 {
			return "weekly"
		}
		names := make([]string, len(r.WeeklyDays))
		for i, d := range r.WeeklyDays {
			names[i] = d.String()[:3]
		}
		return "weekly on " + strings.Join(names, ", ")
	case event.KindMonthly:
		return "monthly"
	case event.KindCustom:
		noun := map[event.Unit]string{
			event.UnitDaily:   "days",
			event.UnitWeekly:  "weeks",
			event.UnitMonthly: "months",
		}[r.Unit]
		return fmt.Sprintf("every %d %s", r.Interval, noun)
	default:
		return ""
	}
}

func (m Model) placeModal(modal string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) weekCount() int {
	if m.gridStart.IsZero() {
		return 0
	}
	days := int(m.gridEnd.Sub(m.gridStart).Hours()/24) + 1
	return (days + 6) / 7
}

func truncateLine(s string, width int) string {
	r := []rune(s)
	if width < 2 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
