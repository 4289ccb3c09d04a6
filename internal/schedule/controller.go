package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
	"github.com/Nikhitha35/eventcal/internal/store"
)

// Decider answers yes/no questions raised while committing a mutation.
// The CLI implements it with a terminal prompt, the TUI with a modal.
type Decider interface {
	Confirm(prompt string) bool
}

// DeciderFunc adapts a plain function to the Decider interface.
type DeciderFunc func(prompt string) bool

func (f DeciderFunc) Confirm(prompt string) bool { return f(prompt) }

// AlwaysConfirm answers yes to every prompt. Used when the caller has
// already obtained confirmation through its own channel.
var AlwaysConfirm = DeciderFunc(func(string) bool { return true })

// Result reports what a controller operation did. Committed is false
// when the decider declined; Conflict carries the occurrence that
// occupied the slot, when one was found.
type Result struct {
	Event     event.Event
	Committed bool
	Conflict  *event.Occurrence
}

// Controller owns the store and funnels every mutation through
// validation, conflict detection and the decider.
type Controller struct {
	store   *store.Store
	decider Decider
}

func NewController(st *store.Store, decider Decider) *Controller {
	if decider == nil {
		decider = AlwaysConfirm
	}
	return &Controller{store: st, decider: decider}
}

// Create validates ev, checks its slot and, once confirmed, mints an id
// and stores it. A declined conflict leaves the store untouched.
func (c *Controller) Create(ctx context.Context, ev event.Event) (Result, error) {
	ev.ID = ""
	if err := ev.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Event: ev}
	if occ, found := FindConflict(ev.Date, ev.ID, ev.Time, c.store.Snapshot()); found {
		res.Conflict = &occ
		prompt := fmt.Sprintf("%q is already scheduled on %s at %s. Create anyway?",
			occ.Title, dateutil.FormatDate(occ.On), occ.Time)
		if !c.decider.Confirm(prompt) {
			return res, nil
		}
	}
	ev.ID = uuid.NewString()
	res.Event = ev
	res.Committed = true
	if err := c.store.Put(ctx, ev); err != nil {
		return res, fmt.Errorf("creating event: %w", err)
	}
	return res, nil
}

// Update replaces the stored event with the same id. The event's own
// slot never conflicts with itself.
func (c *Controller) Update(ctx context.Context, ev event.Event) (Result, error) {
	if _, ok := c.store.Get(ev.ID); !ok {
		return Result{}, fmt.Errorf("event %s: %w", ev.ID, event.ErrNotFound)
	}
	if err := ev.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Event: ev}
	if occ, found := FindConflict(ev.Date, ev.ID, ev.Time, c.store.Snapshot()); found {
		res.Conflict = &occ
		prompt := fmt.Sprintf("%q is already scheduled on %s at %s. Save anyway?",
			occ.Title, dateutil.FormatDate(occ.On), occ.Time)
		if !c.decider.Confirm(prompt) {
			return res, nil
		}
	}
	res.Committed = true
	if err := c.store.Put(ctx, ev); err != nil {
		return res, fmt.Errorf("updating event: %w", err)
	}
	return res, nil
}

// Delete removes the event and, for recurring events, every future
// occurrence with it. The decider is always consulted first.
func (c *Controller) Delete(ctx context.Context, id string) (Result, error) {
	ev, ok := c.store.Get(id)
	if !ok {
		return Result{}, fmt.Errorf("event %s: %w", id, event.ErrNotFound)
	}
	res := Result{Event: ev}
	prompt := fmt.Sprintf("Delete %q?", ev.Title)
	if ev.Recurrence.IsRecurring() {
		prompt = fmt.Sprintf("Delete %q and all its occurrences?", ev.Title)
	}
	if !c.decider.Confirm(prompt) {
		return res, nil
	}
	res.Committed = true
	if err := c.store.Delete(ctx, id); err != nil {
		return res, fmt.Errorf("deleting event: %w", err)
	}
	return res, nil
}

// Reschedule moves the event's anchor date, keeping its time of day.
// Recurring events shift their whole series since occurrences derive
// from the anchor.
func (c *Controller) Reschedule(ctx context.Context, id string, newDate time.Time) (Result, error) {
	ev, ok := c.store.Get(id)
	if !ok {
		return Result{}, fmt.Errorf("event %s: %w", id, event.ErrNotFound)
	}
	newDate = dateutil.TruncateToDay(newDate)
	res := Result{Event: ev}
	if occ, found := FindConflict(newDate, ev.ID, ev.Time, c.store.Snapshot()); found {
		res.Conflict = &occ
		prompt := fmt.Sprintf("%q is already scheduled on %s at %s. Move anyway?",
			occ.Title, dateutil.FormatDate(occ.On), occ.Time)
		if !c.decider.Confirm(prompt) {
			return res, nil
		}
	}
	ev.Date = newDate
	res.Event = ev
	res.Committed = true
	if err := c.store.Put(ctx, ev); err != nil {
		return res, fmt.Errorf("rescheduling event: %w", err)
	}
	return res, nil
}
