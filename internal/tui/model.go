package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nikhitha35/eventcal/internal/config"
	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
	"github.com/Nikhitha35/eventcal/internal/schedule"
	"github.com/Nikhitha35/eventcal/internal/store"
	"github.com/Nikhitha35/eventcal/internal/tui/commands"
	"github.com/Nikhitha35/eventcal/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeForm         // Creating or editing an event
	ModeDetail       // Viewing an event
	ModeConfirm      // Pending yes/no decision
	ModeMove         // Carrying an event to a new date
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  *store.Store
	config *config.Config

	// Mutations run through the controller with an always-yes decider:
	// conflicts and deletions are confirmed in the modal before the
	// command is issued.
	ctrl *schedule.Controller

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	month     time.Time // First day of the displayed month
	cursor    time.Time // Selected day
	gridStart time.Time
	gridEnd   time.Time
	byDay     map[string][]event.Occurrence // "2006-01-02" -> occurrences
	eventIdx  int                           // Selected occurrence within the cursor day
	mode      Mode
	loading   bool

	// Modal state
	form           formModel
	detail         *event.Occurrence
	confirmMessage string
	pending        tea.Cmd // Runs when the user confirms

	// Move mode
	movingID    string
	movingTitle string
	moveFrom    time.Time

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg string

	// Error state
	err error
}

// New creates a new TUI model.
func New(st *store.Store, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("frappe")
	}
	styles := NewStyles(t)

	today := dateutil.TruncateToDay(time.Now())

	return &Model{
		store:   st,
		config:  cfg,
		ctrl:    schedule.NewController(st, schedule.AlwaysConfirm),
		theme:   t,
		styles:  styles,
		month:   time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local),
		cursor:  today,
		byDay:   map[string][]event.Occurrence{},
		form:    newFormModel(styles, cfg.Calendar.DefaultColor),
		mode:    ModeNormal,
		loading: true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.reload()
}

// reload re-expands the visible grid.
func (m Model) reload() tea.Cmd {
	return commands.LoadGrid(m.store, m.month, m.config.WeekStartDay())
}

// occurrencesOn returns the occurrences on the given day, sorted by
// time.
func (m Model) occurrencesOn(day time.Time) []event.Occurrence {
	return m.byDay[dateutil.FormatDate(day)]
}

// selectedOccurrence returns the occurrence under the cursor, if any.
func (m Model) selectedOccurrence() (event.Occurrence, bool) {
	occs := m.occurrencesOn(m.cursor)
	if len(occs) == 0 {
		return event.Occurrence{}, false
	}
	idx := m.eventIdx
	if idx >= len(occs) {
		idx = len(occs) - 1
	}
	return occs[idx], true
}

// setMonth moves the displayed month and keeps the cursor inside it.
func (m *Model) setMonth(month time.Time) tea.Cmd {
	m.month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	m.loading = true
	return m.reload()
}

// Run starts the TUI. Set EVENTCAL_DEBUG to log keystrokes and state
// transitions to a file.
func Run(st *store.Store, cfg *config.Config) error {
	if err := InitDebugLogger(os.Getenv("EVENTCAL_DEBUG") != ""); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(New(st, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
