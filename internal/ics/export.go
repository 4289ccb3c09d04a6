// Package ics converts events to and from iCalendar files so they can
// be exchanged with other calendar applications.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/Nikhitha35/eventcal/internal/event"
)

const prodID = "-//eventcal//eventcal//EN"

// colorProp carries the event color through an export/import round
// trip. Other clients ignore it.
const colorProp = ical.ComponentProperty("X-EVENTCAL-COLOR")

// Export serializes events into a single VCALENDAR. Events carry no
// duration, so each VEVENT gets a nominal one hour.
func Export(events []event.Event) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, ev := range events {
		start, err := startAt(ev)
		if err != nil {
			return "", fmt.Errorf("exporting %q: %w", ev.Title, err)
		}
		ve := cal.AddEvent(ev.ID)
		ve.SetSummary(ev.Title)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(time.Hour))
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		if ev.Color != "" {
			ve.SetProperty(colorProp, ev.Color)
		}
		if ev.Recurrence.IsRecurring() {
			rule, err := rruleString(ev.Recurrence, start)
			if err != nil {
				return "", fmt.Errorf("exporting %q: %w", ev.Title, err)
			}
			ve.AddRrule(rule)
		}
	}
	return cal.Serialize(), nil
}

func startAt(ev event.Event) (time.Time, error) {
	var h, m int
	if _, err := fmt.Sscanf(ev.Time, "%d:%d", &h, &m); err != nil {
		return time.Time{}, fmt.Errorf("time of day %q: %w", ev.Time, err)
	}
	d := ev.Date
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, time.Local), nil
}

// rruleString renders the recurrence as an RFC 5545 RRULE value. The
// end date bounds occurrences exclusively, while UNTIL is inclusive,
// so the exported UNTIL lands one day earlier.
func rruleString(r event.Recurrence, start time.Time) (string, error) {
	opt := rrule.ROption{Interval: 1}
	switch r.Kind {
	case event.KindDaily:
		opt.Freq = rrule.DAILY
	case event.KindWeekly:
		opt.Freq = rrule.WEEKLY
		for _, d := range r.WeeklyDays {
			opt.Byweekday = append(opt.Byweekday, toRRuleWeekday(d))
		}
	case event.KindMonthly:
		opt.Freq = rrule.MONTHLY
	case event.KindCustom:
		opt.Interval = r.Interval
		switch r.Unit {
		case event.UnitWeekly:
			opt.Freq = rrule.WEEKLY
		case event.UnitMonthly:
			opt.Freq = rrule.MONTHLY
		default:
			opt.Freq = rrule.DAILY
		}
	default:
		return "", fmt.Errorf("recurrence kind %q has no RRULE form", r.Kind)
	}
	if r.End != nil {
		last := r.End.AddDate(0, 0, -1)
		opt.Until = time.Date(last.Year(), last.Month(), last.Day(),
			start.Hour(), start.Minute(), 0, 0, time.Local).UTC()
	}
	if _, err := rrule.NewRRule(opt); err != nil {
		return "", err
	}
	return opt.RRuleString(), nil
}

var toRRule = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

func toRRuleWeekday(d time.Weekday) rrule.Weekday { return toRRule[d] }
