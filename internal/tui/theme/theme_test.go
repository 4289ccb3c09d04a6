package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLoadAllAvailable(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if th.Name != name {
				t.Errorf("theme name = %q, want %q", th.Name, name)
			}
			if th.Bg == "" || th.Fg == "" || th.Accent == "" {
				t.Errorf("theme %q missing base colors: %+v", name, th)
			}
			if len(th.Colors) == 0 {
				t.Errorf("theme %q has no event colors", name)
			}
		})
	}
}

func TestLoadFallsBack(t *testing.T) {
	th, err := Load("does-not-exist")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Name != "frappe" {
		t.Errorf("fallback theme = %q, want frappe", th.Name)
	}

	th, err = Load("")
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if th.Name != "frappe" {
		t.Errorf("empty name theme = %q, want frappe", th.Name)
	}
}

func TestEventColor(t *testing.T) {
	th, err := Load("frappe")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := th.EventColor("blue"); got != lipgloss.Color("#8caaee") {
		t.Errorf("EventColor(blue) = %v", got)
	}
	if got := th.EventColor("BLUE"); got != lipgloss.Color("#8caaee") {
		t.Errorf("EventColor is not case insensitive: %v", got)
	}
	if got := th.EventColor("no-such-color"); got != lipgloss.Color(th.Accent) {
		t.Errorf("unknown color should fall back to accent, got %v", got)
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Mocha") {
		t.Error("IsAvailable should be case insensitive")
	}
	if IsAvailable("solarized") {
		t.Error("solarized should not be available")
	}
}
