package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
)

// Form field indices.
const (
	fieldTitle = iota
	fieldDate
	fieldTime
	fieldDesc
	fieldColor
	fieldRepeat
	fieldDays
	fieldEvery
	fieldUnit
	fieldUntil
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Date",
	"Time",
	"Description",
	"Color",
	"Repeat",
	"Days",
	"Every",
	"Unit",
	"Until",
}

var fieldPlaceholders = [fieldCount]string{
	"Event title",
	"YYYY-MM-DD",
	"HH:MM",
	"",
	"blue",
	"none, daily, weekly, monthly, custom",
	"mon,wed (weekly only)",
	"1 (custom only)",
	"days, weeks, months (custom only)",
	"YYYY-MM-DD (optional)",
}

// formModel is the event create/edit form.
type formModel struct {
	inputs       [fieldCount]textinput.Model
	focus        int
	editingID    string // Empty when creating
	defaultColor string
	errMsg       string
}

func newFormModel(styles *Styles, defaultColor string) formModel {
	var f formModel
	f.defaultColor = defaultColor
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 128
		ti.Width = 32
		ti.PromptStyle = styles.InputStyle
		ti.TextStyle = styles.InputStyle
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].CharLimit = 256
	return f
}

// reset prepares the form for a new event on the given day.
func (f *formModel) reset(day time.Time) {
	f.editingID = ""
	f.errMsg = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.inputs[fieldDate].SetValue(dateutil.FormatDate(day))
	f.inputs[fieldColor].SetValue(f.defaultColor)
	f.inputs[fieldRepeat].SetValue("none")
	f.setFocus(fieldTitle)
}

// prefill loads an existing event into the form.
func (f *formModel) prefill(ev event.Event) {
	f.reset(ev.Date)
	f.editingID = ev.ID
	f.inputs[fieldTitle].SetValue(ev.Title)
	f.inputs[fieldTime].SetValue(ev.Time)
	f.inputs[fieldDesc].SetValue(ev.Description)
	f.inputs[fieldColor].SetValue(ev.Color)

	r := ev.Recurrence
	f.inputs[fieldRepeat].SetValue(string(r.Kind))
	if r.Kind == event.KindWeekly && len(r.WeeklyDays) > 0 {
		names := make([]string, len(r.WeeklyDays))
		for i, d := range r.WeeklyDays {
			names[i] = strings.ToLower(d.String()[:3])
		}
		f.inputs[fieldDays].SetValue(strings.Join(names, ","))
	}
	if r.Kind == event.KindCustom {
		f.inputs[fieldEvery].SetValue(strconv.Itoa(r.Interval))
		f.inputs[fieldUnit].SetValue(string(r.Unit))
	}
	if r.End != nil {
		f.inputs[fieldUntil].SetValue(dateutil.FormatDate(*r.End))
	}
}

func (f *formModel) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *formModel) next() { f.setFocus((f.focus + 1) % fieldCount) }
func (f *formModel) prev() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

// buildEvent assembles an event from the form fields. The returned
// event keeps the editing id, or has none when creating.
func (f *formModel) buildEvent() (event.Event, error) {
	rec, err := f.buildRecurrence()
	if err != nil {
		return event.Event{}, err
	}

	ev, err := event.New(
		strings.TrimSpace(f.inputs[fieldTitle].Value()),
		strings.TrimSpace(f.inputs[fieldDate].Value()),
		strings.TrimSpace(f.inputs[fieldTime].Value()),
		strings.TrimSpace(f.inputs[fieldDesc].Value()),
		strings.TrimSpace(f.inputs[fieldColor].Value()),
		rec,
	)
	if err != nil {
		return event.Event{}, err
	}
	ev.ID = f.editingID
	return *ev, nil
}

func (f *formModel) buildRecurrence() (event.Recurrence, error) {
	var end *time.Time
	if v := strings.TrimSpace(f.inputs[fieldUntil].Value()); v != "" {
		t, err := dateutil.ParseDate(v)
		if err != nil {
			return event.Recurrence{}, fmt.Errorf("until: %w", err)
		}
		end = &t
	}

	switch strings.ToLower(strings.TrimSpace(f.inputs[fieldRepeat].Value())) {
	case "", "none":
		return event.None(), nil
	case "daily":
		return event.Daily(end), nil
	case "weekly":
		var days []time.Weekday
		if v := strings.TrimSpace(f.inputs[fieldDays].Value()); v != "" {
			var err error
			days, err = dateutil.ParseWeekdaySet(v)
			if err != nil {
				return event.Recurrence{}, fmt.Errorf("days: %w", err)
			}
		}
		return event.Weekly(days, end), nil
	case "monthly":
		return event.Monthly(end), nil
	case "custom":
		every := 1
		if v := strings.TrimSpace(f.inputs[fieldEvery].Value()); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return event.Recurrence{}, fmt.Errorf("every: %w", event.ErrInvalidInterval)
			}
			every = n
		}
		unit, err := parseFormUnit(strings.TrimSpace(f.inputs[fieldUnit].Value()))
		if err != nil {
			return event.Recurrence{}, err
		}
		return event.Custom(every, unit, end), nil
	default:
		return event.Recurrence{}, event.ErrInvalidKind
	}
}

func parseFormUnit(s string) (event.Unit, error) {
	switch strings.ToLower(s) {
	case "", "day", "days", "daily":
		return event.UnitDaily, nil
	case "week", "weeks", "weekly":
		return event.UnitWeekly, nil
	case "month", "months", "monthly":
		return event.UnitMonthly, nil
	default:
		return "", event.ErrInvalidUnit
	}
}
