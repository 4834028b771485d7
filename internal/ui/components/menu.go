package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/espen/lazynav/internal/keymap"
	"github.com/espen/lazynav/internal/ui/styles"
)

// Item is a menu button: an action ID plus display text
type Item struct {
	id          string
	title       string
	description string
}

func (i Item) ID() string          { return i.id }
func (i Item) Title() string       { return i.title }
func (i Item) Description() string { return i.description }
func (i Item) FilterValue() string { return i.title }

// NewItem creates a new menu item
func NewItem(id, title, description string) Item {
	return Item{id: id, title: title, description: description}
}

// Menu is a vertical list of buttons built on bubbles/list
type Menu struct {
	list   list.Model
	keymap keymap.KeyMap
	width  int
	height int
}

// NewMenu creates a styled button menu
func NewMenu(items []Item, width, height int) Menu {
	delegate := list.NewDefaultDelegate()

	delegate.Styles.SelectedTitle = styles.SelectedItem.
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(styles.ColorAccent).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.
		Bold(false).
		Foreground(styles.ColorGray)
	delegate.Styles.NormalTitle = styles.NormalItem.Padding(0, 0, 0, 2)
	delegate.Styles.NormalDesc = styles.DimmedText.Padding(0, 0, 0, 2)

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, delegate, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Menu{
		list:   l,
		keymap: keymap.DefaultKeyMap(),
		width:  width,
		height: height,
	}
}

// Update handles messages. A press of the select key returns the
// highlighted item; otherwise the item is nil.
func (m Menu) Update(msg tea.Msg) (Menu, *Item, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keymap.Select) {
		if item, ok := m.list.SelectedItem().(Item); ok {
			return m, &item, nil
		}
		return m, nil, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, nil, cmd
}

// View renders the menu
func (m Menu) View() string {
	return m.list.View()
}

// Selected returns the highlighted item
func (m Menu) Selected() (Item, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item, ok
}

// Items returns all items
func (m Menu) Items() []Item {
	listItems := m.list.Items()
	items := make([]Item, 0, len(listItems))
	for _, li := range listItems {
		if item, ok := li.(Item); ok {
			items = append(items, item)
		}
	}
	return items
}

// Index returns the highlighted index
func (m Menu) Index() int {
	return m.list.Index()
}

// SetSize updates the menu dimensions
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}
