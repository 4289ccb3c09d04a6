package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Nikhitha35/eventcal/internal/event"
)

func TestView(t *testing.T) {
	t.Run("renders the month grid", func(t *testing.T) {
		m := newTestModel(t)
		m.width = 140
		seedEvent(t, m, "Dentist", "2025-03-10", "14:00", event.None())
		m = load(t, m)

		out := m.View()
		for _, want := range []string{"March 2025", "Mon", "14:00 Dentist", "31"} {
			if !strings.Contains(out, want) {
				t.Errorf("view does not contain %q", want)
			}
		}
	})

	t.Run("clashing slots are marked in the grid", func(t *testing.T) {
		m := newTestModel(t)
		m.width = 140
		m.height = 60 // Tall enough for all three event lines
		seedEvent(t, m, "Dentist", "2025-03-10", "09:00", event.None())
		seedEvent(t, m, "Standup", "2025-03-10", "09:00", event.None())
		seedEvent(t, m, "Lunch", "2025-03-10", "12:00", event.None())
		m = load(t, m)

		out := m.View()
		for _, want := range []string{"!09:00 Dentist", "!09:00 Standup"} {
			if !strings.Contains(out, want) {
				t.Errorf("view does not mark %q", want)
			}
		}
		if strings.Contains(out, "!12:00") {
			t.Error("lone slot should not carry a clash marker")
		}
	})

	t.Run("zero width falls back to a placeholder", func(t *testing.T) {
		m := newTestModel(t)
		m.width = 0
		if out := m.View(); !strings.Contains(out, "Loading") {
			t.Errorf("view = %q", out)
		}
	})

	t.Run("overflowing day shows a more marker", func(t *testing.T) {
		m := newTestModel(t)
		for i, tod := range []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00"} {
			seedEvent(t, m, string(rune('A'+i)), "2025-03-10", tod, event.None())
		}
		m = load(t, m)
		m.height = 30 // Small enough to force truncation

		if out := m.View(); !strings.Contains(out, "more") {
			t.Error("view does not show an overflow marker")
		}
	})

	t.Run("confirm modal", func(t *testing.T) {
		m := newTestModel(t)
		m.mode = ModeConfirm
		m.confirmMessage = `Delete "Dentist"?`
		out := m.View()
		for _, want := range []string{"Confirm", "Dentist", "[y] yes", "[n] no"} {
			if !strings.Contains(out, want) {
				t.Errorf("confirm modal does not contain %q", want)
			}
		}
	})

	t.Run("form modal", func(t *testing.T) {
		m, _ := press(t, newTestModel(t), "n")
		out := m.View()
		for _, want := range []string{"New event", "Title", "Date", "Repeat"} {
			if !strings.Contains(out, want) {
				t.Errorf("form modal does not contain %q", want)
			}
		}
	})

	t.Run("detail modal", func(t *testing.T) {
		m := newTestModel(t)
		end := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
		ev, err := event.New("Standup", "2025-03-03", "09:00", "daily sync", "green",
			event.Weekly([]time.Weekday{time.Monday}, &end))
		if err != nil {
			t.Fatalf("new event: %v", err)
		}
		m.mode = ModeDetail
		m.detail = &event.Occurrence{
			Event:        *ev,
			On:           time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
			IsRecurrence: true,
		}

		out := m.View()
		for _, want := range []string{"Standup", "2025-03-10", "09:00", "weekly on Mon", "daily sync"} {
			if !strings.Contains(out, want) {
				t.Errorf("detail modal does not contain %q", want)
			}
		}
	})
}

func TestRecurrenceSummary(t *testing.T) {
	tests := []struct {
		name string
		rec  event.Recurrence
		want string
	}{
		{"none", event.None(), ""},
		{"daily", event.Daily(nil), "daily"},
		{"weekly without days", event.Weekly(nil, nil), "weekly"},
		{"weekly with days", event.Weekly([]time.Weekday{time.Monday, time.Friday}, nil), "weekly on Mon, Fri"},
		{"monthly", event.Monthly(nil), "monthly"},
		{"custom", event.Custom(3, event.UnitMonthly, nil), "every 3 months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recurrenceSummary(tt.rec); got != tt.want {
				t.Errorf("recurrenceSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten!!", 13, "exactly ten!!"},
		{"a very long event title", 10, "a very lo…"},
		{"ab", 1, "ab"},
	}
	for _, tt := range tests {
		if got := truncateLine(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateLine(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
