package theme

import "github.com/charmbracelet/lipgloss"

var (
	Crust    = lipgloss.Color("#11111b")
	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Overlay0 = lipgloss.Color("#6c7086")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Surface2 = lipgloss.Color("#585b70")
	Lavender = lipgloss.Color("#b4befe")
	Text     = lipgloss.Color("#cdd6f4")
)

var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(Crust).
	Background(Mauve).
	Padding(0, 1)

var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Surface2).
	Padding(0, 1)

var FocusedPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Mauve).
	Padding(0, 1)

var Dim = lipgloss.NewStyle().
	Foreground(Overlay0)

var StatusBar = lipgloss.NewStyle().
	Background(Surface0).
	Foreground(Text).
	Padding(0, 1)

var StatusKey = lipgloss.NewStyle().
	Background(Surface0).
	Foreground(Mauve).
	Bold(true)
