package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/espen/lazynav/internal/keymap"
	"github.com/espen/lazynav/internal/ui/styles"
)

const backLabel = "← esc"

// TopBar is the one-line header shared by screens that can go back.
// The title never wraps; it is cut with an ellipsis instead.
type TopBar struct {
	title  string
	onBack tea.Cmd
	back   key.Binding
	width  int
}

// NewTopBar creates a top bar; onBack runs when the back key is pressed
func NewTopBar(title string, onBack tea.Cmd) TopBar {
	return TopBar{
		title:  singleLine(title),
		onBack: onBack,
		back:   keymap.DefaultKeyMap().Back,
	}
}

// Title returns the untruncated title
func (t TopBar) Title() string {
	return t.title
}

// SetWidth updates the available width
func (t *TopBar) SetWidth(width int) {
	t.width = width
}

// Update handles the back key. The second result reports whether the
// message was consumed.
func (t TopBar) Update(msg tea.Msg) (TopBar, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, t.back) {
			return t, t.onBack, true
		}
	}
	return t, nil, false
}

// View renders the bar on a single line
func (t TopBar) View() string {
	back := " " + backLabel + "  "
	if t.width <= 0 {
		return styles.TopBarBack.Render(back) + styles.TopBar.Render(t.title)
	}

	backWidth := lipgloss.Width(back)
	if backWidth >= t.width {
		return styles.TopBarBack.Render(truncateToWidth(back, t.width))
	}

	title := truncateToWidth(t.title, t.width-backWidth)
	pad := t.width - backWidth - lipgloss.Width(title)
	return styles.TopBarBack.Render(back) +
		styles.TopBar.Render(title) +
		strings.Repeat(" ", pad)
}
