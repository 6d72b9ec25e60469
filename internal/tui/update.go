package tui

import (
	"interview-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type snippetDeletedMsg struct {
	err error
}

func deleteSnippet(m Model) tea.Cmd {
	sel := m.selected()
	if sel == nil {
		return nil
	}
	db, id := m.db, sel.ID
	return func() tea.Msg {
		if err := session.DeleteSnippet(db, id); err != nil {
			return snippetDeletedMsg{err: err}
		}
		items, err := session.GetRecent(db, 200)
		if err != nil {
			return snippetDeletedMsg{err: err}
		}
		return snippetsLoadedMsg{snippets: items}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.setSize(msg.Width, msg.Height), nil

	case snippetsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m.setSnippets(msg.snippets), nil

	case snippetDeletedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			if m.focus == FocusSidebar {
				m.focus = FocusDetail
			} else {
				m.focus = FocusSidebar
			}
			return m, nil

		case "enter":
			m.focus = FocusDetail
			return m, nil

		case "esc":
			m.focus = FocusSidebar
			return m, nil

		case "d":
			if m.focus == FocusSidebar {
				return m, deleteSnippet(m)
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == FocusSidebar {
		m.list, cmd = m.list.Update(msg)
		m.refreshDetail()
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}
