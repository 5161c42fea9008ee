package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"concatident/internal/driver"
)

func newTestModel(files ...string) *progressModel {
	return NewProgressModel("expanding", files, make(chan driver.Event)).(*progressModel)
}

func TestApplyEventTracksStatus(t *testing.T) {
	m := newTestModel("a.go.in", "b.go.in")

	m.applyEvent(driver.Event{File: "a.go.in", Stage: driver.StageExpand, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "expanding" {
		t.Fatalf("status = %q, want expanding", got)
	}
	m.applyEvent(driver.Event{File: "a.go.in", Stage: driver.StageExpand, Status: driver.StatusDone})
	if got := m.percent(); got != 0.4 {
		t.Fatalf("percent after expand = %v, want 0.4", got)
	}
	m.applyEvent(driver.Event{File: "a.go.in", Stage: driver.StageWrite, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.go.in", Stage: driver.StageLoad, Status: driver.StatusError, Err: errors.New("boom")})
	if got := m.percent(); got != 1.0 {
		t.Fatalf("percent = %v, want 1", got)
	}
	if m.items[1].status != "error" {
		t.Fatalf("b status = %q", m.items[1].status)
	}

	// unknown files and run-level events do not touch the list
	m.applyEvent(driver.Event{File: "zzz", Stage: driver.StageExpand, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{Stage: driver.StageWrite, Status: driver.StatusWorking})
	if m.stageLabel != "writing" {
		t.Fatalf("stage label = %q", m.stageLabel)
	}
}

func TestUpdateDoneQuits(t *testing.T) {
	m := newTestModel("a.go.in")
	next, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	view := next.View()
	if !strings.Contains(view, "done: expanding") || !strings.Contains(view, "a.go.in") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestListenForEventClosed(t *testing.T) {
	ch := make(chan driver.Event, 1)
	m := NewProgressModel("x", []string{"a"}, ch).(*progressModel)
	ch <- driver.Event{File: "a", Stage: driver.StageExpand, Status: driver.StatusCached}
	close(ch)
	if msg, ok := m.listenForEvent()().(eventMsg); !ok || msg.Status != driver.StatusCached {
		t.Fatalf("expected the queued event, got %#v", msg)
	}
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("expected doneMsg after close")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdef", 2, "ab"},
		{"any", 0, "any"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestCtrlCMarksInterrupted(t *testing.T) {
	m := newTestModel("a.go.in")
	if Interrupted(m) {
		t.Fatal("fresh model reports interrupted")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !Interrupted(next) {
		t.Fatal("Ctrl+C should quit and mark the model interrupted")
	}
}
