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

const (
	actionBack = "back"
	actionHome = "home"
)

// Settings can return to whichever screen opened it, or go home and
// drop the whole history
type Settings struct {
	nav    *nav.Controller
	topBar components.TopBar
	menu   components.Menu
	keymap keymap.KeyMap
	width  int
	height int
}

// NewSettings creates the settings screen
func NewSettings(c *nav.Controller) nav.Screen {
	return &Settings{
		nav:    c,
		topBar: components.NewTopBar("Settings", nav.Up()),
		menu: components.NewMenu([]components.Item{
			components.NewItem(actionBack, "Go Back", "Return to the previous screen"),
			components.NewItem(actionHome, "Go to Home", "Return home and clear history"),
		}, 80, 20),
		keymap: keymap.DefaultKeyMap(),
	}
}

func (s *Settings) Init() tea.Cmd {
	return nil
}

func (s *Settings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = msg.Width
		s.height = msg.Height
		s.topBar.SetWidth(msg.Width)
		s.menu.SetSize(msg.Width, max(msg.Height-chrome-1, 0))
		return s, nil
	}

	var cmd tea.Cmd
	var handled bool
	s.topBar, cmd, handled = s.topBar.Update(msg)
	if handled {
		return s, cmd
	}

	var picked *components.Item
	s.menu, picked, cmd = s.menu.Update(msg)
	if picked == nil {
		return s, cmd
	}
	switch picked.ID() {
	case actionBack:
		return s, nav.Up()
	case actionHome:
		return s, nav.ToClearing(nav.Home, nav.Home, true)
	}
	return s, nil
}

func (s *Settings) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.topBar.View(),
		"",
		styles.DimmedText.Render(" Back returns to ")+styles.Label.Render(s.returnsTo()),
		"",
		s.menu.View(),
	)
}

func (s *Settings) returnsTo() string {
	if s.nav == nil {
		return "-"
	}
	prev, ok := s.nav.Previous()
	if !ok {
		return "-"
	}
	return s.nav.Title(prev)
}

func (s *Settings) Title() string {
	return "Settings"
}

func (s *Settings) ShortHelp() []key.Binding {
	return []key.Binding{s.keymap.Up, s.keymap.Down, s.keymap.Select, s.keymap.Back}
}
