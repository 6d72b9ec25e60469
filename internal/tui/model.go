// Package tui is the interactive session-history browser: saved snippets on
// the left, the restored workspace for the selected one on the right.
package tui

import (
	"database/sql"
	"fmt"
	"io"

	"interview-cli/internal/response"
	"interview-cli/internal/session"
	"interview-cli/internal/tui/theme"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type FocusPanel int

const (
	FocusSidebar FocusPanel = iota
	FocusDetail
)

type snippetItem struct {
	session.Snippet
}

func (i snippetItem) Title() string       { return i.Question }
func (i snippetItem) Description() string { return i.Timestamp.Format("Jan 02 15:04") }
func (i snippetItem) FilterValue() string { return i.Question }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(snippetItem)
	if !ok {
		return
	}

	icon := "S"
	iconColor := theme.Green
	if i.Mode == response.ModeDebug {
		icon = "D"
		iconColor = theme.Yellow
	}

	question := i.Question
	maxWidth := m.Width() - 8
	if maxWidth < 10 {
		maxWidth = 10
	}
	if len(question) > maxWidth {
		question = question[:maxWidth-1] + "…"
	}

	iconStyle := lipgloss.NewStyle().Foreground(iconColor)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text)
	line := fmt.Sprintf(" %s %s", iconStyle.Render(icon), textStyle.Render(question))

	if index == m.Index() {
		line = lipgloss.NewStyle().
			Background(theme.Surface1).
			Foreground(theme.Lavender).
			Bold(true).
			Width(m.Width()).
			Render(line)
	}

	fmt.Fprint(w, line)
}

type Model struct {
	width    int
	height   int
	focus    FocusPanel
	list     list.Model
	viewport viewport.Model
	snippets []session.Snippet
	db       *sql.DB
	err      error
	quitting bool
}

// InitialModel builds the browser over an open snippet database.
func InitialModel(db *sql.DB) Model {
	delegate := itemDelegate{}
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle().Foreground(theme.Overlay0).Padding(1)

	vp := viewport.New(0, 0)

	return Model{
		list:     l,
		viewport: vp,
		focus:    FocusSidebar,
		db:       db,
	}
}

type snippetsLoadedMsg struct {
	snippets []session.Snippet
	err      error
}

func loadSnippets(db *sql.DB) tea.Cmd {
	return func() tea.Msg {
		items, err := session.GetRecent(db, 200)
		return snippetsLoadedMsg{snippets: items, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return loadSnippets(m.db)
}

func (m Model) setSize(w, h int) Model {
	m.width = w
	m.height = h

	sidebarWidth := 44
	if w < 110 {
		sidebarWidth = w / 3
	}
	if sidebarWidth < 25 {
		sidebarWidth = 25
	}

	detailWidth := w - sidebarWidth - 6
	panelHeight := h - 4

	if detailWidth < 30 {
		detailWidth = 30
	}
	if panelHeight < 10 {
		panelHeight = 10
	}

	m.list.SetWidth(sidebarWidth - 2)
	m.list.SetHeight(panelHeight - 2)
	m.viewport.Width = detailWidth - 2
	m.viewport.Height = panelHeight - 2

	m.refreshDetail()
	return m
}

func (m Model) setSnippets(items []session.Snippet) Model {
	m.snippets = items

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = snippetItem{item}
	}
	m.list.SetItems(listItems)
	m.refreshDetail()
	return m
}

func (m *Model) refreshDetail() {
	sel := m.selected()
	if sel == nil {
		m.viewport.SetContent(theme.Dim.Padding(2).Render("No saved snippets"))
		return
	}
	m.viewport.SetContent(m.formatDetail(*sel))
}

func (m Model) selected() *session.Snippet {
	if sel := m.list.SelectedItem(); sel != nil {
		if item, ok := sel.(snippetItem); ok {
			return &item.Snippet
		}
	}
	return nil
}

// SnippetCount is exposed for tests.
func (m Model) SnippetCount() int { return len(m.snippets) }

// Focus is exposed for tests.
func (m Model) Focus() FocusPanel { return m.focus }
