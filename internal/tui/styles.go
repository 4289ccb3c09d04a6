// Package tui provides the terminal user interface for eventcal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Nikhitha35/eventcal/internal/tui/theme"
)

// Minimum cell width before the grid collapses day names to one letter.
const minCellWidth = 10

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Title bar ("March 2025")
	TitleStyle lipgloss.Style

	// Weekday header row
	WeekdayStyle lipgloss.Style

	// Day cells
	CellStyle         lipgloss.Style
	CellTodayStyle    lipgloss.Style
	CellSelectedStyle lipgloss.Style
	DayNumStyle       lipgloss.Style
	DayNumMutedStyle  lipgloss.Style
	DayNumTodayStyle  lipgloss.Style

	// Event lines inside cells
	EventStyle         lipgloss.Style
	EventSelectedStyle lipgloss.Style
	EventMovingStyle   lipgloss.Style
	EventConflictStyle lipgloss.Style
	MoreStyle          lipgloss.Style

	// Footer
	HelpStyle    lipgloss.Style
	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style

	// Modals
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalLabelStyle  lipgloss.Style
	ModalHintStyle   lipgloss.Style
	ModalErrorStyle  lipgloss.Style
	InputStyle       lipgloss.Style
	InputFocusStyle  lipgloss.Style
	ConfirmYesStyle  lipgloss.Style
	ConfirmNoStyle   lipgloss.Style
	DetailValueStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorWarning:     theme.Color(t.Warning),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.WeekdayStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Bold(true).
		Align(lipgloss.Center)

	cellBorder := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.colorFgMuted)
	s.CellStyle = cellBorder
	s.CellTodayStyle = cellBorder.BorderForeground(s.colorAccent)
	s.CellSelectedStyle = cellBorder.BorderForeground(s.colorFg).Background(s.colorBgHighlight)

	s.DayNumStyle = lipgloss.NewStyle().Foreground(s.colorFg).Bold(true)
	s.DayNumMutedStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.DayNumTodayStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true).Underline(true)

	s.EventStyle = lipgloss.NewStyle()
	s.EventSelectedStyle = lipgloss.NewStyle().Background(s.colorBgSelection).Bold(true)
	s.EventMovingStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Bold(true)
	s.EventConflictStyle = lipgloss.NewStyle().Foreground(s.colorWarning)
	s.MoreStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Italic(true)

	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.WarningStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Bold(true)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(1, 2)
	s.ModalTitleStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)
	s.ModalLabelStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Width(12)
	s.ModalHintStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Italic(true)
	s.ModalErrorStyle = lipgloss.NewStyle().Foreground(s.colorWarning)
	s.InputStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.InputFocusStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)
	s.ConfirmYesStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Bold(true)
	s.ConfirmNoStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.DetailValueStyle = lipgloss.NewStyle().Foreground(s.colorFg)

	return s
}
