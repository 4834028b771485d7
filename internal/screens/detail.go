package screens

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/espen/lazynav/internal/keymap"
	"github.com/espen/lazynav/internal/nav"
	"github.com/espen/lazynav/internal/ui/components"
	"github.com/espen/lazynav/internal/ui/styles"
)

// Detail holds a single text field. Its value lives only as long as the
// screen instance, so leaving and re-entering starts empty.
type Detail struct {
	topBar components.TopBar
	input  textinput.Model
	keymap keymap.KeyMap
	width  int
	height int
}

// NewDetail creates the detail screen
func NewDetail(*nav.Controller) nav.Screen {
	input := textinput.New()
	input.Placeholder = "Type anything"
	input.Prompt = "› "
	input.Width = 40
	input.Focus()

	return &Detail{
		topBar: components.NewTopBar("Detail", nav.Up()),
		input:  input,
		keymap: keymap.DefaultKeyMap(),
	}
}

func (d *Detail) Init() tea.Cmd {
	return textinput.Blink
}

func (d *Detail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		d.width = msg.Width
		d.height = msg.Height
		d.topBar.SetWidth(msg.Width)
		d.input.Width = max(msg.Width-4, 1)
		return d, nil
	}

	var cmd tea.Cmd
	var handled bool
	d.topBar, cmd, handled = d.topBar.Update(msg)
	if handled {
		return d, cmd
	}

	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *Detail) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		d.topBar.View(),
		"",
		styles.Label.Render(" Note"),
		" "+d.input.View(),
		"",
		styles.DimmedText.Render(" Cleared when you leave this screen"),
	)
}

// Value returns the current text
func (d *Detail) Value() string {
	return d.input.Value()
}

// CapturesText reports true while the field has focus
func (d *Detail) CapturesText() bool {
	return d.input.Focused()
}

func (d *Detail) Title() string {
	return "Detail"
}

func (d *Detail) ShortHelp() []key.Binding {
	return []key.Binding{d.keymap.Back}
}
