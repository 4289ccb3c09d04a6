package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nikhitha35/eventcal/internal/dateutil"
	"github.com/Nikhitha35/eventcal/internal/event"
	"github.com/Nikhitha35/eventcal/internal/recur"
	"github.com/Nikhitha35/eventcal/internal/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), store.NewMemoryBlob())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func mustCreate(t *testing.T, c *Controller, title string, date time.Time, tod string, rec event.Recurrence) event.Event {
	t.Helper()
	ev, err := event.New(title, dateutil.FormatDate(date), tod, "", "", rec)
	if err != nil {
		t.Fatalf("new event: %v", err)
	}
	res, err := c.Create(context.Background(), *ev)
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	if !res.Committed {
		t.Fatalf("create %q: not committed", title)
	}
	return res.Event
}

func TestFindConflict(t *testing.T) {
	st := newTestStore(t)
	c := NewController(st, AlwaysConfirm)
	mustCreate(t, c, "Standup", day(2025, time.March, 3), "09:00",
		event.Weekly([]time.Weekday{time.Monday}, nil))

	tests := []struct {
		name string
		on   time.Time
		tod  string
		want bool
	}{
		{"same slot on anchor", day(2025, time.March, 3), "09:00", true},
		{"same slot on later occurrence", day(2025, time.March, 17), "09:00", true},
		{"different minute", day(2025, time.March, 3), "09:30", false},
		{"day without occurrence", day(2025, time.March, 4), "09:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.on, "", tt.tod, st.Snapshot()); got != tt.want {
				t.Errorf("HasConflict(%s %s) = %v, want %v",
					dateutil.FormatDate(tt.on), tt.tod, got, tt.want)
			}
		})
	}
}

func TestFindConflictExcludesCandidate(t *testing.T) {
	st := newTestStore(t)
	c := NewController(st, AlwaysConfirm)
	ev := mustCreate(t, c, "Dentist", day(2025, time.March, 5), "14:00", event.None())

	if HasConflict(ev.Date, ev.ID, ev.Time, st.Snapshot()) {
		t.Error("event conflicts with itself")
	}
	if !HasConflict(ev.Date, "other-id", ev.Time, st.Snapshot()) {
		t.Error("other event in the same slot not detected")
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("mints an id", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		ev := mustCreate(t, c, "Lunch", day(2025, time.April, 1), "12:00", event.None())
		if ev.ID == "" {
			t.Fatal("created event has no id")
		}
		if _, ok := st.Get(ev.ID); !ok {
			t.Fatal("created event not stored")
		}
	})

	t.Run("invalid event rejected", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		_, err := c.Create(ctx, event.Event{Title: "", Date: day(2025, time.April, 1), Time: "12:00"})
		if !errors.Is(err, event.ErrEmptyTitle) {
			t.Fatalf("err = %v, want ErrEmptyTitle", err)
		}
		if st.Len() != 0 {
			t.Error("invalid event was stored")
		}
	})

	t.Run("declined conflict leaves store untouched", func(t *testing.T) {
		st := newTestStore(t)
		seed := NewController(st, AlwaysConfirm)
		mustCreate(t, seed, "Standup", day(2025, time.March, 3), "09:00", event.None())

		asked := false
		c := NewController(st, DeciderFunc(func(string) bool { asked = true; return false }))
		ev, _ := event.New("Review", "2025-03-03", "09:00", "", "", event.None())
		res, err := c.Create(ctx, *ev)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if !asked {
			t.Error("decider was not consulted")
		}
		if res.Committed {
			t.Error("declined create was committed")
		}
		if res.Conflict == nil || res.Conflict.Title != "Standup" {
			t.Errorf("res.Conflict = %+v, want the standup occurrence", res.Conflict)
		}
		if st.Len() != 1 {
			t.Errorf("store has %d events, want 1", st.Len())
		}
	})

	t.Run("confirmed conflict commits", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		mustCreate(t, c, "Standup", day(2025, time.March, 3), "09:00", event.None())
		mustCreate(t, c, "Review", day(2025, time.March, 3), "09:00", event.None())
		if st.Len() != 2 {
			t.Errorf("store has %d events, want 2", st.Len())
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		_, err := c.Update(ctx, event.Event{ID: "nope", Title: "X", Date: day(2025, time.April, 1), Time: "10:00"})
		if !errors.Is(err, event.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("own slot never conflicts", func(t *testing.T) {
		st := newTestStore(t)
		seeded := mustCreate(t, NewController(st, AlwaysConfirm), "Dentist", day(2025, time.March, 5), "14:00", event.None())

		c := NewController(st, DeciderFunc(func(string) bool {
			t.Error("decider consulted for the event's own slot")
			return false
		}))
		seeded.Title = "Dentist (moved rooms)"
		res, err := c.Update(ctx, seeded)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if !res.Committed {
			t.Fatal("update not committed")
		}
		got, _ := st.Get(seeded.ID)
		if got.Title != "Dentist (moved rooms)" {
			t.Errorf("stored title = %q", got.Title)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed delete removes future occurrences", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		ev := mustCreate(t, c, "Gym", day(2025, time.March, 3), "18:00", event.Daily(nil))

		res, err := c.Delete(ctx, ev.ID)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if !res.Committed {
			t.Fatal("delete not committed")
		}
		occs := recur.ExpandAll(st.Snapshot(), day(2025, time.March, 1), day(2025, time.March, 31))
		if len(occs) != 0 {
			t.Errorf("deleted event still expands to %d occurrences", len(occs))
		}
	})

	t.Run("declined delete keeps the event", func(t *testing.T) {
		st := newTestStore(t)
		ev := mustCreate(t, NewController(st, AlwaysConfirm), "Gym", day(2025, time.March, 3), "18:00", event.None())

		c := NewController(st, DeciderFunc(func(string) bool { return false }))
		res, err := c.Delete(ctx, ev.ID)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if res.Committed {
			t.Error("declined delete was committed")
		}
		if _, ok := st.Get(ev.ID); !ok {
			t.Error("event gone after declined delete")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		if _, err := c.Delete(ctx, "nope"); !errors.Is(err, event.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the anchor, keeps the time", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		ev := mustCreate(t, c, "Dentist", day(2025, time.March, 5), "14:00", event.None())

		res, err := c.Reschedule(ctx, ev.ID, day(2025, time.March, 12))
		if err != nil {
			t.Fatalf("reschedule: %v", err)
		}
		if !res.Committed {
			t.Fatal("reschedule not committed")
		}
		got, _ := st.Get(ev.ID)
		if !dateutil.SameDay(got.Date, day(2025, time.March, 12)) {
			t.Errorf("date = %s, want 2025-03-12", dateutil.FormatDate(got.Date))
		}
		if got.Time != "14:00" {
			t.Errorf("time = %q, want 14:00", got.Time)
		}
	})

	t.Run("declined conflict keeps the original date", func(t *testing.T) {
		st := newTestStore(t)
		seed := NewController(st, AlwaysConfirm)
		mustCreate(t, seed, "Standup", day(2025, time.March, 10), "14:00", event.None())
		ev := mustCreate(t, seed, "Dentist", day(2025, time.March, 5), "14:00", event.None())

		c := NewController(st, DeciderFunc(func(string) bool { return false }))
		res, err := c.Reschedule(ctx, ev.ID, day(2025, time.March, 10))
		if err != nil {
			t.Fatalf("reschedule: %v", err)
		}
		if res.Committed {
			t.Error("declined reschedule was committed")
		}
		got, _ := st.Get(ev.ID)
		if !dateutil.SameDay(got.Date, day(2025, time.March, 5)) {
			t.Errorf("date = %s, want unchanged 2025-03-05", dateutil.FormatDate(got.Date))
		}
	})

	t.Run("shifts a whole series", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		ev := mustCreate(t, c, "Gym", day(2025, time.March, 3), "18:00", event.Daily(nil))

		if _, err := c.Reschedule(ctx, ev.ID, day(2025, time.March, 10)); err != nil {
			t.Fatalf("reschedule: %v", err)
		}
		occs := recur.ExpandAll(st.Snapshot(), day(2025, time.March, 1), day(2025, time.March, 9))
		if len(occs) != 0 {
			t.Errorf("occurrences before the new anchor: %d, want 0", len(occs))
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		st := newTestStore(t)
		c := NewController(st, AlwaysConfirm)
		if _, err := c.Reschedule(ctx, "nope", day(2025, time.March, 10)); !errors.Is(err, event.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}
