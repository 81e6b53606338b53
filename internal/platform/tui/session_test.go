package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	session, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return session, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "alice")

	// Enter on the first item opens an empty grid.
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenViewer || m.viewer == nil {
		t.Fatalf("expected viewer screen, got %v", m.screen)
	}
	if m.viewer.Viewer().Grid().Population() != 0 {
		t.Error("empty grid selection should start with no live cells")
	}

	m, _ = updateSession(t, m, runeKey("n"))
	m, _ = updateSession(t, m, TickMsg{ID: m.viewer.tickID})
	if m.viewer.Viewer().Grid().Generation() != 1 {
		t.Errorf("Generation() = %d, expected 1", m.viewer.Viewer().Grid().Generation())
	}

	// Esc leaves the viewer without ending the session.
	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("esc should return to the menu, got screen %v quitting %v", m.screen, m.quitting)
	}
	if cmd != nil {
		if _, isQuit := cmd().(tea.QuitMsg); isQuit {
			t.Error("returning to the menu must not quit the program")
		}
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenHistory {
		t.Fatalf("tab should open history, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "RUN HISTORY") {
		t.Error("history view should be rendered")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("esc should leave history, got %v", m.screen)
	}

	m, cmd = updateSession(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionsOwnTheirGrids(t *testing.T) {
	a := NewSessionModel(nil, testConfig(), "alice")
	b := NewSessionModel(nil, testConfig(), "bob")

	a, _ = updateSession(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	b, _ = updateSession(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	t.Cleanup(a.viewer.Close)
	t.Cleanup(b.viewer.Close)

	a, _ = updateSession(t, a, tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if a.viewer.Viewer().Grid().Population() != 1 {
		t.Error("painting should change alice's grid")
	}
	if b.viewer.Viewer().Grid().Population() != 0 {
		t.Error("bob's grid must not see alice's cells")
	}
}

func TestSessionPatternTooLarge(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "alice")

	// Move the cursor onto the glider gun, which cannot fit a 10x10 grid.
	for i, item := range m.menu.items {
		if item.PatternID == "gosper-glider-gun" {
			m.menu.cursor = i
		}
	}
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenMenu {
		t.Fatalf("expected to stay in the menu, got %v", m.screen)
	}
	if m.menu.notice == "" {
		t.Error("menu should explain why the pattern could not start")
	}
}

func TestSessionReopenIgnoresOldTicks(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "alice")

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	oldTick := TickMsg{ID: m.viewer.tickID}
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.viewer.tickID == oldTick.ID {
		t.Fatal("a reopened viewer should start a new tick chain")
	}
	m, _ = updateSession(t, m, runeKey("n"))

	m, cmd := updateSession(t, m, oldTick)
	if m.viewer.Viewer().Grid().Generation() != 0 {
		t.Errorf("Generation() = %d, expected the old viewer's tick to be dropped", m.viewer.Viewer().Grid().Generation())
	}
	if cmd != nil {
		t.Error("an old tick must not start a second tick chain")
	}
}
