package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"interview-cli/internal/response"
	"interview-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func testModel(t *testing.T, snippets ...session.Snippet) Model {
	t.Helper()
	db, err := session.OpenDB(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, s := range snippets {
		if err := session.SaveSnippet(db, s); err != nil {
			t.Fatalf("SaveSnippet failed: %v", err)
		}
	}

	m := InitialModel(db)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	msg := m.Init()()
	updated, _ = m.Update(msg)
	return updated.(Model)
}

func sampleSnippet(question string) session.Snippet {
	return session.Snippet{
		ID:        uuid.NewString(),
		Question:  question,
		Answer:    "answer text",
		Mode:      response.ModeSolution,
		Timestamp: time.Now(),
	}
}

func TestInitLoadsSnippets(t *testing.T) {
	m := testModel(t, sampleSnippet("two sum"), sampleSnippet("reverse list"))

	if m.SnippetCount() != 2 {
		t.Errorf("SnippetCount = %d, want 2", m.SnippetCount())
	}
}

func TestViewShowsRestoredWorkspace(t *testing.T) {
	m := testModel(t, sampleSnippet("find the median"))

	view := m.View()
	if !strings.Contains(view, "find the median") {
		t.Error("view should contain the saved question")
	}
	if !strings.Contains(view, session.RestoredComplexity) {
		t.Error("detail should show restored complexity sentinel")
	}
}

func TestFocusSwitching(t *testing.T) {
	m := testModel(t, sampleSnippet("q"))

	if m.Focus() != FocusSidebar {
		t.Fatalf("initial focus = %v, want sidebar", m.Focus())
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.Focus() != FocusDetail {
		t.Errorf("focus after enter = %v, want detail", m.Focus())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.Focus() != FocusSidebar {
		t.Errorf("focus after esc = %v, want sidebar", m.Focus())
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %T", msg)
	}
}
