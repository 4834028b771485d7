package styles

import "github.com/charmbracelet/lipgloss"

// Lazygit-inspired color palette
var (
	ColorCyan    = lipgloss.Color("#00ffff")
	ColorGreen   = lipgloss.Color("#00ff00")
	ColorRed     = lipgloss.Color("#ff0000")
	ColorWhite   = lipgloss.Color("#ffffff")
	ColorGray    = lipgloss.Color("#808080")
	ColorDimGray = lipgloss.Color("#4a4a4a")

	// ColorAccent is overridden from config via SetAccent
	ColorAccent = ColorCyan
)

var (
	// Screen heading (Home has no top bar)
	Heading lipgloss.Style

	// Top bar line
	TopBar lipgloss.Style

	// Back hint inside the top bar
	TopBarBack lipgloss.Style

	// Selected button
	SelectedItem lipgloss.Style

	// Normal button
	NormalItem = lipgloss.NewStyle().
			Foreground(ColorWhite)

	// Dimmed/secondary text
	DimmedText = lipgloss.NewStyle().
			Foreground(ColorGray)

	// Field label
	Label lipgloss.Style

	// Error text in the status bar
	ErrorText = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Status bar at bottom
	StatusBar = lipgloss.NewStyle().
			Foreground(ColorGray).
			Background(lipgloss.Color("#1a1a1a")).
			Padding(0, 1)

	// Help overlay box
	HelpBox lipgloss.Style
)

func init() {
	applyAccent()
}

// SetAccent changes the accent color. Empty values keep the current accent.
func SetAccent(color string) {
	if color == "" {
		return
	}
	ColorAccent = lipgloss.Color(color)
	applyAccent()
}

func applyAccent() {
	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Padding(0, 1)

	TopBar = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	TopBarBack = lipgloss.NewStyle().
		Foreground(ColorGray)

	SelectedItem = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	Label = lipgloss.NewStyle().
		Foreground(ColorAccent)

	HelpBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 2)
}
