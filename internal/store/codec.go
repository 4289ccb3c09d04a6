package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
)

// eventRecord is the wire form of an event in the persistence blob: a
// JSON array of these, dates as YYYY-MM-DD strings, weekdays by name.
type eventRecord struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	Description string           `json:"description,omitempty"`
	Color       string           `json:"color,omitempty"`
	Recurrence  recurrenceRecord `json:"recurrence"`
}

type recurrenceRecord struct {
	Kind       string   `json:"kind"`
	WeeklyDays []string `json:"weeklyDays,omitempty"`
	Interval   int      `json:"interval,omitempty"`
	Unit       string   `json:"unit,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
}

func encodeEvents(events []event.Event) (string, error) {
	records := make([]eventRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, toRecord(ev))
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeEvents(raw string) ([]event.Event, error) {
	var records []eventRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	events := make([]event.Event, 0, len(records))
	for i, rec := range records {
		ev, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func toRecord(ev event.Event) eventRecord {
	rec := eventRecord{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        dateutil.FormatDate(ev.Date),
		Time:        ev.Time,
		Description: ev.Description,
		Color:       ev.Color,
		Recurrence: recurrenceRecord{
			Kind:     string(ev.Recurrence.Kind),
			Interval: ev.Recurrence.Interval,
			Unit:     string(ev.Recurrence.Unit),
		},
	}
	for _, d := range ev.Recurrence.WeeklyDays {
		rec.Recurrence.WeeklyDays = append(rec.Recurrence.WeeklyDays, strings.ToLower(d.String()))
	}
	if ev.Recurrence.End != nil {
		rec.Recurrence.EndDate = dateutil.FormatDate(*ev.Recurrence.End)
	}
	return rec
}

func fromRecord(rec eventRecord) (event.Event, error) {
	anchor, err := time.ParseInLocation("2006-01-02", rec.Date, time.Local)
	if err != nil {
		return event.Event{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	r := event.Recurrence{
		Kind:     event.Kind(rec.Recurrence.Kind),
		Interval: rec.Recurrence.Interval,
		Unit:     event.Unit(rec.Recurrence.Unit),
	}
	if r.Kind == "" {
		r.Kind = event.KindNone
	}
	for _, name := range rec.Recurrence.WeeklyDays {
		d, err := dateutil.ParseWeekday(name)
		if err != nil {
			return event.Event{}, fmt.Errorf("parsing weekday %q: %w", name, err)
		}
		r.WeeklyDays = append(r.WeeklyDays, d)
	}
	if rec.Recurrence.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", rec.Recurrence.EndDate, time.Local)
		if err != nil {
			return event.Event{}, fmt.Errorf("parsing end date %q: %w", rec.Recurrence.EndDate, err)
		}
		r.End = &end
	}

	ev := event.Event{
		ID:          rec.ID,
		Title:       rec.Title,
		Date:        anchor,
		Time:        rec.Time,
		Description: rec.Description,
		Color:       rec.Color,
		Recurrence:  r,
	}
	if ev.ID == "" {
		return event.Event{}, fmt.Errorf("record has no id")
	}
	// Hand-edited blobs can hold values the UI would never accept, such
	// as a 12-hour time that lexical slot comparison silently never
	// matches. Reject them here so the store surfaces degraded mode.
	if err := ev.Validate(); err != nil {
		return event.Event{}, err
	}
	return ev, nil
}
