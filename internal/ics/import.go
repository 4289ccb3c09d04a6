package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
)

// Import reads a VCALENDAR and returns the events it describes.
// Returned events have no id; the caller schedules them so that
// conflicts with the existing calendar surface on the way in.
// A VEVENT that cannot be mapped is skipped, not fatal.
func Import(r io.Reader) ([]event.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var events []event.Event
	for _, ve := range cal.Events() {
		ev, err := fromVEvent(ve)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func fromVEvent(ve *ical.VEvent) (event.Event, error) {
	var ev event.Event
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Title = p.Value
	}
	if ev.Title == "" {
		return ev, fmt.Errorf("vevent without summary")
	}
	start, err := ve.GetStartAt()
	if err != nil {
		return ev, fmt.Errorf("vevent %q: %w", ev.Title, err)
	}
	start = start.In(time.Local)
	ev.Date = dateutil.TruncateToDay(start)
	ev.Time = start.Format("15:04")
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		ev.Description = p.Value
	}
	if p := ve.GetProperty(colorProp); p != nil {
		ev.Color = p.Value
	}
	ev.Recurrence = event.None()
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		rec, err := fromRRule(p.Value)
		if err != nil {
			return ev, fmt.Errorf("vevent %q: %w", ev.Title, err)
		}
		ev.Recurrence = rec
	}
	return ev, ev.Validate()
}

// fromRRule maps an RRULE value onto the recurrence kinds the calendar
// understands. INTERVAL above one becomes a custom recurrence; BYDAY
// only survives for plain weekly rules, matching what Export emits.
func fromRRule(value string) (event.Recurrence, error) {
	opt, err := rrule.StrToROption(value)
	if err != nil {
		return event.Recurrence{}, fmt.Errorf("parsing RRULE %q: %w", value, err)
	}

	var end *time.Time
	if !opt.Until.IsZero() {
		// UNTIL is inclusive, the recurrence end date is not.
		u := dateutil.TruncateToDay(opt.Until.In(time.Local)).AddDate(0, 0, 1)
		end = &u
	}

	interval := opt.Interval
	if interval > 1 {
		unit, err := customUnit(opt.Freq)
		if err != nil {
			return event.Recurrence{}, err
		}
		return event.Custom(interval, unit, end), nil
	}

	switch opt.Freq {
	case rrule.DAILY:
		return event.Daily(end), nil
	case rrule.WEEKLY:
		var days []time.Weekday
		for _, wd := range opt.Byweekday {
			days = append(days, fromRRuleWeekday(wd))
		}
		return event.Weekly(days, end), nil
	case rrule.MONTHLY:
		return event.Monthly(end), nil
	default:
		return event.Recurrence{}, fmt.Errorf("unsupported RRULE frequency in %q", value)
	}
}

func customUnit(freq rrule.Frequency) (event.Unit, error) {
	switch freq {
	case rrule.DAILY:
		return event.UnitDaily, nil
	case rrule.WEEKLY:
		return event.UnitWeekly, nil
	case rrule.MONTHLY:
		return event.UnitMonthly, nil
	default:
		return "", fmt.Errorf("unsupported RRULE frequency %v", freq)
	}
}

var fromRRuleMap = map[rrule.Weekday]time.Weekday{
	rrule.MO: time.Monday,
	rrule.TU: time.Tuesday,
	rrule.WE: time.Wednesday,
	rrule.TH: time.Thursday,
	rrule.FR: time.Friday,
	rrule.SA: time.Saturday,
	rrule.SU: time.Sunday,
}

func fromRRuleWeekday(wd rrule.Weekday) time.Weekday { return fromRRuleMap[wd] }
