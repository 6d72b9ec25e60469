package tui

import (
	"fmt"
	"strings"

	"interview-cli/internal/render"
	"interview-cli/internal/session"
	"interview-cli/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	title := theme.Title.Render(" interview — session history ")

	sidebarStyle := theme.Panel
	detailStyle := theme.Panel
	if m.focus == FocusSidebar {
		sidebarStyle = theme.FocusedPanel
	} else {
		detailStyle = theme.FocusedPanel
	}

	sidebar := sidebarStyle.Render(m.list.View())
	detail := detailStyle.Render(m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, detail)

	status := m.statusLine()

	return lipgloss.JoinVertical(lipgloss.Left, title, body, status)
}

func (m Model) statusLine() string {
	if m.err != nil {
		return theme.StatusBar.Render(fmt.Sprintf("error: %v", m.err))
	}

	keys := []string{"↑/↓ navigate", "enter detail", "tab focus", "d delete", "q quit"}
	var parts []string
	for _, k := range keys {
		kv := strings.SplitN(k, " ", 2)
		parts = append(parts, theme.StatusKey.Render(kv[0])+" "+theme.StatusBar.Render(kv[1]))
	}
	count := theme.StatusBar.Render(fmt.Sprintf(" %d snippets ", len(m.snippets)))
	return strings.Join(parts, theme.StatusBar.Render(" · ")) + count
}

func (m Model) formatDetail(s session.Snippet) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Overlay0).Bold(true).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Question"))
	b.WriteString(valueStyle.Render(render.WrapText(s.Question, m.viewport.Width-12)) + "\n")
	b.WriteString(labelStyle.Render("Saved"))
	b.WriteString(valueStyle.Render(s.Timestamp.Format("Jan 02 2006 15:04")) + "\n")
	if len(s.Tags) > 0 {
		b.WriteString(labelStyle.Render("Tags"))
		b.WriteString(valueStyle.Render(strings.Join(s.Tags, ", ")) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(render.Restored(session.Restore(s), m.viewport.Width-2))
	return b.String()
}
