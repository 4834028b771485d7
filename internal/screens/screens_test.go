package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/espen/lazynav/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newController(t *testing.T) *nav.Controller {
	t.Helper()
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, reg.Validate(nav.Home))

	c, err := nav.NewController(reg, nav.Home, nil)
	require.NoError(t, err)
	c.Resize(80, 24)
	return c
}

// press sends a key to the current screen and applies any navigation it asks for
func press(t *testing.T, c *nav.Controller, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		cmd := c.Update(msg)
		if cmd == nil {
			continue
		}
		switch m := cmd().(type) {
		case nav.NavigateMsg:
			_, err := c.Navigate(m.Route)
			require.NoError(t, err)
		case nav.NavigateUpMsg:
			c.NavigateUp()
		case nav.NavigateClearingMsg:
			_, err := c.NavigateClearing(m.Route, m.PopUpTo)
			require.NoError(t, err)
		}
	}
}

func typeText(c *nav.Controller, s string) {
	c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestRegistryGraphIsValid(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, []nav.Route{nav.Home, nav.Detail, nav.Profile, nav.Settings}, reg.Routes())
	assert.NoError(t, reg.Validate(nav.Home))
}

func TestHomeButtons(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tea.Msg
		route nav.Route
	}{
		{"detail", []tea.Msg{enter}, nav.Detail},
		{"profile", []tea.Msg{down, enter}, nav.Profile},
		{"settings", []tea.Msg{down, down, enter}, nav.Settings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t)
			press(t, c, tt.keys...)

			assert.Equal(t, []nav.Route{nav.Home, tt.route}, c.Routes())
		})
	}
}

func TestHomeEscIsNoop(t *testing.T) {
	c := newController(t)
	press(t, c, esc)

	assert.Equal(t, []nav.Route{nav.Home}, c.Routes())
}

func TestDetailBackReturnsHome(t *testing.T) {
	c := newController(t)
	press(t, c, enter)
	require.Equal(t, nav.Detail, c.CurrentRoute())

	press(t, c, esc)
	assert.Equal(t, nav.Home, c.CurrentRoute())
	assert.Equal(t, 1, c.Len())
}

func TestDetailTextResetsOnReentry(t *testing.T) {
	c := newController(t)
	press(t, c, enter)

	typeText(c, "hello")
	detail, ok := c.Current().(*Detail)
	require.True(t, ok)
	assert.Equal(t, "hello", detail.Value())
	assert.True(t, detail.CapturesText())

	press(t, c, esc, enter)
	detail, ok = c.Current().(*Detail)
	require.True(t, ok)
	assert.Empty(t, detail.Value())
}

func TestDetailAcceptsKeysThatLookLikeShortcuts(t *testing.T) {
	c := newController(t)
	press(t, c, enter)

	typeText(c, "jkq?")
	assert.Equal(t, "jkq?", c.Current().(*Detail).Value())
	assert.Equal(t, nav.Detail, c.CurrentRoute())
}

func TestProfileToSettingsAndBack(t *testing.T) {
	c := newController(t)
	press(t, c, down, enter)
	require.Equal(t, nav.Profile, c.CurrentRoute())

	press(t, c, enter)
	require.Equal(t, []nav.Route{nav.Home, nav.Profile, nav.Settings}, c.Routes())
	assert.Contains(t, c.Current().View(), "Profile")

	press(t, c, esc)
	assert.Equal(t, nav.Profile, c.CurrentRoute())
}

func TestSettingsGoBack(t *testing.T) {
	c := newController(t)
	press(t, c, down, enter, enter)
	require.Equal(t, nav.Settings, c.CurrentRoute())

	press(t, c, enter)
	assert.Equal(t, []nav.Route{nav.Home, nav.Profile}, c.Routes())
}

func TestSettingsGoToHomeClearsStack(t *testing.T) {
	tests := []struct {
		name string
		path []tea.Msg
	}{
		{"from home", []tea.Msg{down, down, enter}},
		{"via profile", []tea.Msg{down, enter, enter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t)
			press(t, c, tt.path...)
			require.Equal(t, nav.Settings, c.CurrentRoute())

			press(t, c, down, enter)
			assert.Equal(t, []nav.Route{nav.Home}, c.Routes())
			assert.Equal(t, "Home", c.Current().Title())
		})
	}
}

func TestTopBarTitlesStayOnOneLine(t *testing.T) {
	c := newController(t)
	c.Resize(12, 24)
	press(t, c, down, enter)

	firstLine := strings.SplitN(c.Current().View(), "\n", 2)[0]
	assert.Contains(t, firstLine, "…")
}
