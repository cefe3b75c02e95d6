package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AndreiNanescu/FinanceWatcher/internal/chat"
)

// newTestModel builds a model with a sized viewport so transcript
// refreshes behave as they do after the first window-size message.
func newTestModel() Model {
	m := New(chat.NewClient("http://127.0.0.1:0"))
	m.vp = viewportNew(80, 20)
	m.ready = true
	return m
}

func TestStaleTickAfterCancelIsDropped(t *testing.T) {
	m := newTestModel()
	if cmd := m.startReveal("partial answer text"); cmd == nil {
		t.Fatal("expected a tick command for a non-empty payload")
	}
	for i := 0; i < 3; i++ {
		next, _ := m.Update(revealTickMsg{gen: m.revealGen})
		m = next.(Model)
	}

	staleGen := m.revealGen
	m.cancelReveal()
	if m.session != nil {
		t.Fatal("cancel should discard the session")
	}
	count := len(m.messages)
	last := m.messages[count-1]
	if !last.interrupted || last.text != "par" {
		t.Fatalf("cancelled reveal finalized as %+v, want interrupted prefix %q", last, "par")
	}

	// A tick scheduled before the cancel still lands; it must change
	// nothing and schedule nothing.
	next, cmd := m.Update(revealTickMsg{gen: staleGen})
	m = next.(Model)
	if cmd != nil {
		t.Error("stale tick scheduled a follow-up command")
	}
	if m.session != nil || len(m.messages) != count || m.messages[count-1] != last {
		t.Error("stale tick mutated the transcript")
	}
}

func TestStaleTickDoesNotAdvanceSuccessorSession(t *testing.T) {
	m := newTestModel()
	m.startReveal("first answer")
	staleGen := m.revealGen
	m.cancelReveal()

	m.startReveal("second answer")
	if m.session == nil {
		t.Fatal("expected a live successor session")
	}
	before := m.session.Revealed()

	next, _ := m.Update(revealTickMsg{gen: staleGen})
	m = next.(Model)
	if m.session == nil || m.session.Revealed() != before {
		t.Errorf("orphaned tick advanced the successor session: revealed %d, want %d",
			m.session.Revealed(), before)
	}
}

func TestTickAfterTeardownIsIgnored(t *testing.T) {
	m := newTestModel()
	m.startReveal("some payload")
	gen := m.revealGen
	m.teardown()

	next, cmd := m.Update(revealTickMsg{gen: gen})
	m = next.(Model)
	if cmd != nil || m.session != nil {
		t.Error("tick fired against a torn-down session")
	}
	if len(m.messages) != 0 {
		t.Errorf("teardown finalized %d messages, want none", len(m.messages))
	}
}

func TestInputDisabledWhileBusy(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *Model)
	}{
		{"request in flight", func(m *Model) { m.waiting = true }},
		{"reveal running", func(m *Model) { m.startReveal("still revealing") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			tt.setup(&m)
			count := len(m.messages)

			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
			m = next.(Model)
			if m.input.Value() != "" {
				t.Errorf("input accepted %q while busy", m.input.Value())
			}

			next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			m = next.(Model)
			if cmd != nil || len(m.messages) != count {
				t.Error("submission went through while busy")
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	m := newTestModel()

	if got := m.statusLine(); !strings.Contains(got, "backend: offline") {
		t.Errorf("status line %q missing offline state", got)
	}

	m.backendUp = true
	if got := m.statusLine(); !strings.Contains(got, "backend: online") {
		t.Errorf("status line %q missing online state", got)
	}

	m.waiting = true
	if got := m.statusLine(); !strings.Contains(got, "thinking") {
		t.Errorf("status line %q missing request activity", got)
	}

	m.waiting = false
	m.startReveal("an answer")
	if got := m.statusLine(); !strings.Contains(got, "revealing") {
		t.Errorf("status line %q missing reveal activity", got)
	}
}
