// Package store holds the event list and writes it through to a key-value
// blob on every mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Nikhitha35/eventcal/internal/event"
)

// ErrPersistenceUnavailable reports that the backing blob could not be
// read or written. The store keeps operating on its in-memory list; the
// caller decides whether to warn.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// blobKey is the fixed key the full event list is stored under.
const blobKey = "events"

// Blob is the external key-value persistence boundary. Get returns the
// empty string when the key has never been written.
type Blob interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Close() error
}

// Store is the in-memory event list, keyed by ID and kept in insertion
// order. All mutation goes through Put and Delete, each of which
// serializes the full list back to the blob. A mutex guards the list:
// the TUI runs every command on its own goroutine, so a grid reload can
// overlap an in-flight mutation.
type Store struct {
	mu       sync.RWMutex
	blob     Blob
	events   map[string]event.Event
	order    []string
	degraded bool
}

// Open loads the event list from the blob. A nil blob yields a purely
// in-memory store. If the blob is unreachable or its contents cannot be
// decoded, Open returns a usable empty store together with an error
// wrapping ErrPersistenceUnavailable; the store then runs in degraded
// (non-persistent) mode.
func Open(ctx context.Context, blob Blob) (*Store, error) {
	s := &Store{
		blob:   blob,
		events: make(map[string]event.Event),
	}
	if blob == nil {
		return s, nil
	}

	raw, err := blob.Get(ctx, blobKey)
	if err != nil {
		s.degraded = true
		return s, fmt.Errorf("%w: loading events: %v", ErrPersistenceUnavailable, err)
	}
	if raw == "" {
		return s, nil
	}

	events, err := decodeEvents(raw)
	if err != nil {
		s.degraded = true
		return s, fmt.Errorf("%w: decoding events: %w", ErrPersistenceUnavailable, err)
	}
	for _, ev := range events {
		s.events[ev.ID] = ev
		s.order = append(s.order, ev.ID)
	}
	return s, nil
}

// Degraded returns true if the store lost its persistence backing and is
// operating in-memory only.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Get returns the event with the given id.
func (s *Store) Get(id string) (event.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.events[id]
	if !ok {
		return event.Event{}, false
	}
	return copyEvent(ev), true
}

// Snapshot returns a copy of all events in insertion order. The copies are
// safe to hand to the expander and detector without aliasing store state.
func (s *Store) Snapshot() []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() []event.Event {
	out := make([]event.Event, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyEvent(s.events[id]))
	}
	return out
}

// Put inserts or replaces the event with ev.ID and persists the list.
func (s *Store) Put(ctx context.Context, ev event.Event) error {
	if ev.ID == "" {
		return errors.New("event has no id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[ev.ID]; !exists {
		s.order = append(s.order, ev.ID)
	}
	s.events[ev.ID] = copyEvent(ev)
	return s.persist(ctx)
}

// Delete removes the event with the given id and persists the list.
// Returns event.ErrNotFound if no such event is stored.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[id]; !exists {
		return event.ErrNotFound
	}
	delete(s.events, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s.persist(ctx)
}

// persist serializes the full list to the blob. Callers hold the write
// lock. Failures leave the in-memory state intact and mark the store
// degraded.
func (s *Store) persist(ctx context.Context) error {
	if s.blob == nil {
		return nil
	}
	raw, err := encodeEvents(s.snapshotLocked())
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}
	if err := s.blob.Put(ctx, blobKey, raw); err != nil {
		s.degraded = true
		return fmt.Errorf("%w: saving events: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

// Close releases the backing blob.
func (s *Store) Close() error {
	if s.blob == nil {
		return nil
	}
	return s.blob.Close()
}

func copyEvent(ev event.Event) event.Event {
	out := ev
	if ev.Recurrence.WeeklyDays != nil {
		out.Recurrence.WeeklyDays = append([]time.Weekday(nil), ev.Recurrence.WeeklyDays...)
	}
	if ev.Recurrence.End != nil {
		end := *ev.Recurrence.End
		out.Recurrence.End = &end
	}
	return out
}
