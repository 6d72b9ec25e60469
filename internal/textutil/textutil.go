// Package textutil measures and clips terminal text by display width, so
// callers stay correct in the presence of ANSI escapes and wide runes.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// WrapText wraps prose to a width, leaving narrow text alone.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// ClipLine bounds a single line to a display width without an ellipsis.
// Code lines are clipped rather than wrapped so indentation stays readable.
func ClipLine(line string, width int) string {
	if width <= 0 || ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Cut(line, 0, width)
}

// TruncateWithEllipsis bounds a single line by display width.
func TruncateWithEllipsis(line string, width int) string {
	if width <= 0 {
		return line
	}
	lineWidth := ansi.StringWidth(line)
	if lineWidth <= width {
		return line
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	return ansi.Cut(line, 0, width-3) + "..."
}

// StringWidth reports the display width of a string.
func StringWidth(s string) int {
	return ansi.StringWidth(s)
}

// MaxLineWidth reports the widest display width among the lines.
func MaxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
