// Package render draws parsed answers for the terminal. It is the CLI's
// stand-in for the overlay UI: everything it receives is already structured,
// so rendering is pure string assembly.
package render

import (
	"fmt"
	"strings"

	"interview-cli/internal/response"
	"interview-cli/internal/session"
	"interview-cli/internal/textutil"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b4befe"))
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	codeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	codeFrame   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585b70")).
			Padding(0, 1)
)

const defaultWidth = 100

// Solution renders a solution payload at the given terminal width.
func Solution(sol response.Solution, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Thoughts") + "\n")
	writeBullets(&b, sol.Thoughts, width)

	b.WriteString("\n" + headerStyle.Render("Solution") + "\n")
	b.WriteString(codeBlock(sol.Code, width) + "\n")

	b.WriteString("\n" + headerStyle.Render("Complexity") + "\n")
	writeBullets(&b, []string{
		"Time: " + sol.TimeComplexity,
		"Space: " + sol.SpaceComplexity,
	}, width)

	return b.String()
}

// Debug renders a debug payload at the given terminal width.
func Debug(dbg response.Debug, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder

	writeSection(&b, "Issues", dbg.Issues, width)
	writeSection(&b, "Fixes", dbg.Fixes, width)
	writeSection(&b, "Why", dbg.Why, width)
	writeSection(&b, "Next Steps", dbg.NextSteps, width)

	b.WriteString(headerStyle.Render("Corrected Code") + "\n")
	b.WriteString(codeBlock(dbg.Code, width) + "\n")

	return b.String()
}

// Restored renders a workspace rebuilt from session history.
func Restored(r session.Restored, width int) string {
	if r.Target == response.ModeDebug {
		return Debug(response.Debug{
			Code:            r.Code,
			Issues:          r.Issues,
			Fixes:           r.Fixes,
			Why:             r.Why,
			NextSteps:       r.NextSteps,
			TimeComplexity:  r.TimeComplexity,
			SpaceComplexity: r.SpaceComplexity,
		}, width)
	}
	return Solution(response.Solution{
		Code:            r.Code,
		Thoughts:        r.Thoughts,
		TimeComplexity:  r.TimeComplexity,
		SpaceComplexity: r.SpaceComplexity,
	}, width)
}

// SnippetLine is the one-line list representation of a saved snippet.
func SnippetLine(s session.Snippet, width int) string {
	marker := dimStyle.Render(string(s.Mode))
	when := s.Timestamp.Format("Jan 02 15:04")
	line := fmt.Sprintf("%s  %s  %s  %s", shortID(s.ID), when, marker, s.Question)
	return TruncateWithEllipsis(line, width)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func writeSection(b *strings.Builder, title string, items []string, width int) {
	if len(items) == 0 {
		return
	}
	b.WriteString(headerStyle.Render(title) + "\n")
	writeBullets(b, items, width)
	b.WriteString("\n")
}

func writeBullets(b *strings.Builder, items []string, width int) {
	for _, item := range items {
		wrapped := textutil.WrapText(item, width-4)
		lines := strings.Split(wrapped, "\n")
		b.WriteString("  " + dimStyle.Render("-") + " " + bulletStyle.Render(lines[0]) + "\n")
		for _, cont := range lines[1:] {
			b.WriteString("    " + bulletStyle.Render(cont) + "\n")
		}
	}
}

func codeBlock(code string, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var lines []string
	for _, line := range strings.Split(code, "\n") {
		lines = append(lines, codeStyle.Render(textutil.ClipLine(line, inner)))
	}
	return codeFrame.Render(strings.Join(lines, "\n"))
}

// WrapText wraps prose to a width, leaving narrow text alone.
func WrapText(text string, width int) string {
	return textutil.WrapText(text, width)
}

// TruncateWithEllipsis bounds a single line by display width.
func TruncateWithEllipsis(line string, width int) string {
	return textutil.TruncateWithEllipsis(line, width)
}
