package screens

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/espen/lazynav/internal/keymap"
	"github.com/espen/lazynav/internal/nav"
	"github.com/espen/lazynav/internal/ui/components"
	"github.com/espen/lazynav/internal/ui/styles"
)

// Profile shows static user details and links on to Settings
type Profile struct {
	topBar components.TopBar
	menu   components.Menu
	keymap keymap.KeyMap
	width  int
	height int
}

// NewProfile creates the profile screen
func NewProfile(*nav.Controller) nav.Screen {
	return &Profile{
		topBar: components.NewTopBar("Profile", nav.Up()),
		menu: components.NewMenu([]components.Item{
			components.NewItem(string(nav.Settings), "Settings", "Open settings from here"),
		}, 80, 20),
		keymap: keymap.DefaultKeyMap(),
	}
}

func (p *Profile) Init() tea.Cmd {
	return nil
}

func (p *Profile) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.width = msg.Width
		p.height = msg.Height
		p.topBar.SetWidth(msg.Width)
		p.menu.SetSize(msg.Width, max(msg.Height-chrome-2, 0))
		return p, nil
	}

	var cmd tea.Cmd
	var handled bool
	p.topBar, cmd, handled = p.topBar.Update(msg)
	if handled {
		return p, cmd
	}

	var picked *components.Item
	p.menu, picked, cmd = p.menu.Update(msg)
	if picked != nil {
		return p, nav.To(nav.Route(picked.ID()))
	}
	return p, cmd
}

func (p *Profile) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.topBar.View(),
		"",
		styles.Label.Render(" Name  ")+styles.NormalItem.Render("Guest"),
		styles.Label.Render(" Role  ")+styles.NormalItem.Render("Viewer"),
		"",
		p.menu.View(),
	)
}

func (p *Profile) Title() string {
	return "Profile"
}

func (p *Profile) ShortHelp() []key.Binding {
	return []key.Binding{p.keymap.Select, p.keymap.Back}
}
