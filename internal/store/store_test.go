package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Nikhitha35/eventcal/internal/event"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sampleEvents() []event.Event {
	end := date(2024, 6, 1)
	return []event.Event{
		{
			ID:          "one",
			Title:       "Dentist",
			Date:        date(2024, 3, 1),
			Time:        "09:00",
			Description: "checkup",
			Color:       "#1a73e8",
			Recurrence:  event.None(),
		},
		{
			ID:         "two",
			Title:      "Standup",
			Date:       date(2024, 3, 4),
			Time:       "10:30",
			Recurrence: event.Weekly([]time.Weekday{time.Monday, time.Wednesday}, &end),
		},
		{
			ID:         "three",
			Title:      "Rent",
			Date:       date(2024, 1, 31),
			Time:       "08:00",
			Recurrence: event.Monthly(nil),
		},
		{
			ID:         "four",
			Title:      "Review",
			Date:       date(2024, 3, 1),
			Time:       "15:00",
			Recurrence: event.Custom(2, event.UnitWeekly, nil),
		},
	}
}

// failingBlob errors on every operation.
type failingBlob struct{}

func (failingBlob) Get(context.Context, string) (string, error) {
	return "", errors.New("disk on fire")
}
func (failingBlob) Put(context.Context, string, string) error {
	return errors.New("disk on fire")
}
func (failingBlob) Close() error { return nil }

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	blob := NewMemoryBlob()

	s, err := Open(ctx, blob)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for _, ev := range sampleEvents() {
		if err := s.Put(ctx, ev); err != nil {
			t.Fatalf("Put %s failed: %v", ev.ID, err)
		}
	}

	// Reopen from the same blob and compare.
	reloaded, err := Open(ctx, blob)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if reloaded.Len() != len(sampleEvents()) {
		t.Fatalf("got %d events after reload, want %d", reloaded.Len(), len(sampleEvents()))
	}

	for i, want := range sampleEvents() {
		got := reloaded.Snapshot()[i]
		if got.ID != want.ID || got.Title != want.Title || got.Time != want.Time ||
			got.Description != want.Description || got.Color != want.Color {
			t.Errorf("event %s: got %+v, want %+v", want.ID, got, want)
		}
		if !got.Date.Equal(want.Date) {
			t.Errorf("event %s: got date %v, want %v", want.ID, got.Date, want.Date)
		}
		if got.Recurrence.Kind != want.Recurrence.Kind {
			t.Errorf("event %s: got kind %v, want %v", want.ID, got.Recurrence.Kind, want.Recurrence.Kind)
		}
		if len(got.Recurrence.WeeklyDays) != len(want.Recurrence.WeeklyDays) {
			t.Errorf("event %s: got weekly days %v, want %v",
				want.ID, got.Recurrence.WeeklyDays, want.Recurrence.WeeklyDays)
		}
		if (got.Recurrence.End == nil) != (want.Recurrence.End == nil) {
			t.Errorf("event %s: end date presence mismatch", want.ID)
		} else if want.Recurrence.End != nil && !got.Recurrence.End.Equal(*want.Recurrence.End) {
			t.Errorf("event %s: got end %v, want %v", want.ID, got.Recurrence.End, want.Recurrence.End)
		}
	}
}

func TestStore_GetPutDelete(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, NewMemoryBlob())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	ev := sampleEvents()[0]
	if err := s.Put(ctx, ev); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok := s.Get("one")
	if !ok {
		t.Fatal("expected event to be found")
	}
	if got.Title != "Dentist" {
		t.Errorf("got title %q", got.Title)
	}

	// Replacing by ID keeps a single entry.
	ev.Title = "Dentist (moved)"
	if err := s.Put(ctx, ev); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("got %d events, want 1", s.Len())
	}

	if err := s.Delete(ctx, "one"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := s.Get("one"); ok {
		t.Error("expected event to be gone after delete")
	}

	if err := s.Delete(ctx, "one"); !errors.Is(err, event.ErrNotFound) {
		t.Errorf("got error %v, want %v", err, event.ErrNotFound)
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := Open(ctx, nil)
	if err := s.Put(ctx, sampleEvents()[1]); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	snap := s.Snapshot()
	snap[0].Title = "mutated"
	snap[0].Recurrence.WeeklyDays[0] = time.Sunday

	got, _ := s.Get("two")
	if got.Title != "Standup" {
		t.Error("snapshot mutation leaked into store title")
	}
	if got.Recurrence.WeeklyDays[0] != time.Monday {
		t.Error("snapshot mutation leaked into store weekday set")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, NewMemoryBlob())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Readers and writers race; run with -race to catch unguarded state.
	var wg sync.WaitGroup
	for _, ev := range sampleEvents() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Put(ctx, ev); err != nil {
				t.Errorf("Put %s failed: %v", ev.ID, err)
			}
		}()
	}
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_ = s.Snapshot()
				_, _ = s.Get("one")
				_ = s.Len()
			}
		}()
	}
	wg.Wait()

	if s.Len() != len(sampleEvents()) {
		t.Errorf("got %d events, want %d", s.Len(), len(sampleEvents()))
	}
	if err := s.Delete(ctx, "two"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestStore_DegradedMode(t *testing.T) {
	ctx := context.Background()

	t.Run("unreachable blob", func(t *testing.T) {
		s, err := Open(ctx, failingBlob{})
		if !errors.Is(err, ErrPersistenceUnavailable) {
			t.Fatalf("got error %v, want %v", err, ErrPersistenceUnavailable)
		}
		if s == nil {
			t.Fatal("expected usable store despite persistence failure")
		}
		if !s.Degraded() {
			t.Error("expected degraded store")
		}

		// Mutations still work in memory; persistence errors are reported.
		if err := s.Put(ctx, sampleEvents()[0]); !errors.Is(err, ErrPersistenceUnavailable) {
			t.Errorf("got error %v, want %v", err, ErrPersistenceUnavailable)
		}
		if s.Len() != 1 {
			t.Errorf("got %d events in memory, want 1", s.Len())
		}
	})

	t.Run("corrupt blob", func(t *testing.T) {
		blob := NewMemoryBlob()
		_ = blob.Put(ctx, "events", "{not json")

		s, err := Open(ctx, blob)
		if !errors.Is(err, ErrPersistenceUnavailable) {
			t.Fatalf("got error %v, want %v", err, ErrPersistenceUnavailable)
		}
		if s.Len() != 0 {
			t.Errorf("got %d events, want empty list", s.Len())
		}
	})

	t.Run("malformed record", func(t *testing.T) {
		// A hand-edited blob with a 12-hour time would otherwise load
		// silently and never match in conflict detection.
		blob := NewMemoryBlob()
		_ = blob.Put(ctx, "events", `[{"id":"one","title":"Dentist","date":"2024-03-01","time":"9:00am","recurrence":{"kind":"none"}}]`)

		s, err := Open(ctx, blob)
		if !errors.Is(err, ErrPersistenceUnavailable) {
			t.Fatalf("got error %v, want %v", err, ErrPersistenceUnavailable)
		}
		if !errors.Is(err, event.ErrInvalidTimeFormat) {
			t.Errorf("got error %v, want it to wrap %v", err, event.ErrInvalidTimeFormat)
		}
		if !s.Degraded() {
			t.Error("expected degraded store")
		}
		if s.Len() != 0 {
			t.Errorf("got %d events, want empty list", s.Len())
		}
	})

	t.Run("absent key initializes empty", func(t *testing.T) {
		s, err := Open(ctx, NewMemoryBlob())
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if s.Degraded() {
			t.Error("empty blob is not a degraded condition")
		}
		if s.Len() != 0 {
			t.Errorf("got %d events, want 0", s.Len())
		}
	})
}
