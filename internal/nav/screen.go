package nav

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a navigable screen in the TUI
type Screen interface {
	tea.Model

	// Title returns the screen title for breadcrumbs/status bar
	Title() string

	// ShortHelp returns context-specific help bindings
	ShortHelp() []key.Binding
}

// TextCapturer is implemented by screens that take free text input.
// While CapturesText reports true the app leaves single-key shortcuts alone.
type TextCapturer interface {
	CapturesText() bool
}

// NavigateMsg asks the app to push a route onto the back stack
type NavigateMsg struct {
	Route Route
}

// NavigateUpMsg asks the app to pop the current screen
type NavigateUpMsg struct{}

// NavigateClearingMsg asks the app to pop up to a route and then push another
type NavigateClearingMsg struct {
	Route   Route
	PopUpTo PopUpTo
}

// To creates a command navigating to route
func To(route Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// Up creates a command returning to the previous screen
func Up() tea.Cmd {
	return func() tea.Msg {
		return NavigateUpMsg{}
	}
}

// ToClearing creates a command that clears history down to popUpTo
// (and popUpTo itself when inclusive) before navigating to route.
func ToClearing(route, popUpTo Route, inclusive bool) tea.Cmd {
	return func() tea.Msg {
		return NavigateClearingMsg{
			Route:   route,
			PopUpTo: PopUpTo{Route: popUpTo, Inclusive: inclusive},
		}
	}
}
