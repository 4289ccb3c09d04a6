// Package event defines the core domain types for eventcal.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidKind       = errors.New("recurrence must be none, daily, weekly, monthly or custom")
	ErrInvalidUnit       = errors.New("frequency unit must be daily, weekly or monthly")
	ErrInvalidInterval   = errors.New("interval must be at least 1")
	ErrEndBeforeAnchor   = errors.New("recurrence end date must be on or after the event date")
)

// Domain errors.
var (
	ErrNotFound = errors.New("event not found")
)

// Kind identifies how an event repeats.
type Kind string

const (
	KindNone    Kind = "none"
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindCustom  Kind = "custom"
)

// Valid returns true if the kind is a known value.
func (k Kind) Valid() bool {
	switch k {
	case KindNone, KindDaily, KindWeekly, KindMonthly, KindCustom:
		return true
	default:
		return false
	}
}

// Unit is the step unit for custom recurrences.
type Unit string

const (
	UnitDaily   Unit = "daily"
	UnitWeekly  Unit = "weekly"
	UnitMonthly Unit = "monthly"
)

// Recurrence is a tagged variant describing how an event repeats. Only the
// fields relevant to the Kind are meaningful: WeeklyDays for KindWeekly,
// Interval and Unit for KindCustom. End bounds any recurring kind; nil
// means unbounded.
type Recurrence struct {
	Kind       Kind
	WeeklyDays []time.Weekday
	Interval   int
	Unit       Unit
	End        *time.Time
}

// None returns the non-recurring variant.
func None() Recurrence {
	return Recurrence{Kind: KindNone}
}

// Daily returns a variant repeating every day.
func Daily(end *time.Time) Recurrence {
	return Recurrence{Kind: KindDaily, End: end}
}

// Weekly returns a variant repeating on the given weekdays. An empty set
// means "every 7 days from the anchor".
func Weekly(days []time.Weekday, end *time.Time) Recurrence {
	return Recurrence{Kind: KindWeekly, WeeklyDays: days, End: end}
}

// Monthly returns a variant repeating on the anchor's day-of-month.
func Monthly(end *time.Time) Recurrence {
	return Recurrence{Kind: KindMonthly, End: end}
}

// Custom returns a variant repeating every interval units.
func Custom(interval int, unit Unit, end *time.Time) Recurrence {
	return Recurrence{Kind: KindCustom, Interval: interval, Unit: unit, End: end}
}

// IsRecurring returns true for any kind other than none.
func (r Recurrence) IsRecurring() bool {
	return r.Kind != KindNone && r.Kind != ""
}

// OnWeekday returns true if d is in the weekly day set.
func (r Recurrence) OnWeekday(d time.Weekday) bool {
	for _, wd := range r.WeeklyDays {
		if wd == d {
			return true
		}
	}
	return false
}

// Event represents a stored calendar event. ID is an opaque token assigned
// once at creation; Date is the anchor date (the first occurrence for
// recurring events).
type Event struct {
	ID          string
	Title       string
	Date        time.Time
	Time        string // "HH:MM" format
	Description string
	Color       string
	Recurrence  Recurrence
}

// Occurrence is a concrete, dated materialization of an Event on one
// calendar day. Occurrences are ephemeral: computed per query and never
// persisted.
type Occurrence struct {
	Event
	On           time.Time // the concrete date of this occurrence
	IsRecurrence bool      // true when generated from a recurrence rule
}

// New creates a new Event from form input with validation. The ID is left
// empty; the scheduling controller mints one when the event is committed.
// date must be in YYYY-MM-DD format (empty defaults to today), tod in
// HH:MM format.
func New(title, date, tod, description, color string, rec Recurrence) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	anchor, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if err := ValidateTimeOfDay(tod); err != nil {
		return nil, err
	}

	if err := rec.validate(anchor); err != nil {
		return nil, err
	}

	return &Event{
		Title:       title,
		Date:        anchor,
		Time:        tod,
		Description: description,
		Color:       color,
		Recurrence:  rec,
	}, nil
}

// Validate checks an already-constructed event, e.g. one decoded from the
// persistence blob or an ICS import.
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if e.Date.IsZero() {
		return dateutil.ErrInvalidDateFormat
	}
	if err := ValidateTimeOfDay(e.Time); err != nil {
		return err
	}
	return e.Recurrence.validate(e.Date)
}

func (r Recurrence) validate(anchor time.Time) error {
	if !r.Kind.Valid() {
		return ErrInvalidKind
	}
	if r.Kind == KindCustom {
		if r.Interval < 1 {
			return ErrInvalidInterval
		}
		switch r.Unit {
		case UnitDaily, UnitWeekly, UnitMonthly:
		default:
			return ErrInvalidUnit
		}
	}
	if r.Kind != KindNone && r.End != nil && r.End.Before(dateutil.TruncateToDay(anchor)) {
		return ErrEndBeforeAnchor
	}
	return nil
}

// ValidateTimeOfDay checks that s is a valid HH:MM time.
func ValidateTimeOfDay(s string) error {
	if len(s) != 5 {
		return ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// SameSlot returns true if the other occurrence occupies the same date and
// the same exact hour:minute. Slot equality is the unit of conflict: no
// event duration is modeled.
func (o Occurrence) SameSlot(other Occurrence) bool {
	return dateutil.SameDay(o.On, other.On) && o.Time == other.Time
}

// String returns a short human-readable description, used in prompts and
// error messages.
func (o Occurrence) String() string {
	return fmt.Sprintf("%q on %s at %s", o.Title, dateutil.FormatDate(o.On), o.Time)
}
