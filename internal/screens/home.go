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

// Home is the root screen with one button per destination
type Home struct {
	menu   components.Menu
	keymap keymap.KeyMap
	width  int
	height int
}

// NewHome creates the home screen
func NewHome(*nav.Controller) nav.Screen {
	return &Home{
		menu: components.NewMenu([]components.Item{
			components.NewItem(string(nav.Detail), "Detail", "Write a short note"),
			components.NewItem(string(nav.Profile), "Profile", "About this user"),
			components.NewItem(string(nav.Settings), "Settings", "Preferences and navigation"),
		}, 80, 20),
		keymap: keymap.DefaultKeyMap(),
	}
}

func (h *Home) Init() tea.Cmd {
	return nil
}

func (h *Home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		h.width = msg.Width
		h.height = msg.Height
		h.menu.SetSize(msg.Width, max(msg.Height-chrome, 0))
		return h, nil
	}

	var picked *components.Item
	var cmd tea.Cmd
	h.menu, picked, cmd = h.menu.Update(msg)
	if picked != nil {
		return h, nav.To(nav.Route(picked.ID()))
	}
	return h, cmd
}

func (h *Home) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Heading.Render("Home"),
		styles.DimmedText.Render(" Pick a screen"),
		"",
		h.menu.View(),
	)
}

func (h *Home) Title() string {
	return "Home"
}

func (h *Home) ShortHelp() []key.Binding {
	return []key.Binding{h.keymap.Up, h.keymap.Down, h.keymap.Select}
}
