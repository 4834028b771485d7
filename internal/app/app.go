package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/espen/lazynav/internal/config"
	"github.com/espen/lazynav/internal/keymap"
	"github.com/espen/lazynav/internal/nav"
	"github.com/espen/lazynav/internal/ui/layout"
	"github.com/espen/lazynav/internal/ui/styles"
)

// Options tune the root model
type Options struct {
	ShowBreadcrumbs bool
	Logger          *slog.Logger
}

// App is the root bubbletea model. It owns the navigation controller and
// is the only place the back stack is mutated.
type App struct {
	nav             *nav.Controller
	keymap          keymap.KeyMap
	help            help.Model
	logger          *slog.Logger
	width           int
	height          int
	showHelp        bool
	showBreadcrumbs bool
	err             error
}

// New creates a new App around a controller
func New(c *nav.Controller, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := help.New()
	h.Styles.ShortKey = styles.Label
	h.Styles.ShortDesc = styles.DimmedText
	h.Styles.ShortSeparator = styles.DimmedText

	return &App{
		nav:             c,
		keymap:          keymap.DefaultKeyMap(),
		help:            h,
		logger:          logger,
		showBreadcrumbs: opts.ShowBreadcrumbs,
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	if current := a.nav.Current(); current != nil {
		return current.Init()
	}
	return nil
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, a.nav.Resize(msg.Width, a.contentHeight())

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

		// Single-key shortcuts belong to the screen while it takes text
		if !a.capturingText() {
			if key.Matches(msg, a.keymap.Quit) {
				if a.nav.Len() <= 1 {
					return a, tea.Quit
				}
				// Pop screen instead of quitting
				a.nav.NavigateUp()
				return a, nil
			}

			if key.Matches(msg, a.keymap.Help) {
				a.showHelp = !a.showHelp
				return a, nil
			}
		}

		if a.showHelp && key.Matches(msg, a.keymap.Back) {
			a.showHelp = false
			return a, nil
		}

	case nav.NavigateMsg:
		cmd, err := a.nav.Navigate(msg.Route)
		return a, a.settle(cmd, err)

	case nav.NavigateUpMsg:
		a.nav.NavigateUp()
		a.err = nil
		return a, nil

	case nav.NavigateClearingMsg:
		cmd, err := a.nav.NavigateClearing(msg.Route, msg.PopUpTo)
		return a, a.settle(cmd, err)

	case ErrMsg:
		a.err = msg.Err
		a.logger.Error("navigation failed", "err", msg.Err)
		return a, nil
	}

	return a, a.nav.Update(msg)
}

// settle records the outcome of a navigation
func (a *App) settle(cmd tea.Cmd, err error) tea.Cmd {
	if err != nil {
		return func() tea.Msg { return ErrMsg{Err: err} }
	}
	a.err = nil
	return cmd
}

func (a *App) capturingText() bool {
	tc, ok := a.nav.Current().(nav.TextCapturer)
	return ok && tc.CapturesText()
}

func (a *App) contentHeight() int {
	return a.regions()["content"]
}

func (a *App) regions() map[string]int {
	return layout.Split(a.height, []layout.Slot{
		{Name: "content"},
		{Name: "status", Size: config.StatusBarHeight},
	})
}

// View renders the app
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var content string
	if current := a.nav.Current(); current != nil {
		content = current.View()
	}

	// Show help overlay if toggled
	if a.showHelp {
		content = a.renderHelp()
	}

	// Layout: content + status bar
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Height(a.contentHeight()).MaxHeight(a.contentHeight()).Render(content),
		a.renderStatusBar(),
	)
}

func (a *App) renderStatusBar() string {
	var parts []string
	if a.err != nil {
		parts = append(parts, styles.ErrorText.Render("Error: "+a.err.Error()))
	} else if a.showBreadcrumbs {
		parts = append(parts, strings.Join(a.nav.Breadcrumbs(), " > "))
	}

	bindings := []key.Binding{a.keymap.Help, a.keymap.Quit}
	if current := a.nav.Current(); current != nil {
		bindings = append(current.ShortHelp(), bindings...)
	}
	parts = append(parts, a.help.ShortHelpView(bindings))

	return styles.StatusBar.
		MaxWidth(a.width).
		Render(strings.Join(parts, " | "))
}

func (a *App) renderHelp() string {
	var lines []string

	lines = append(lines, styles.Heading.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	for _, column := range a.keymap.FullHelp() {
		for _, binding := range column {
			helpStr := binding.Help()
			line := styles.NormalItem.Render(helpStr.Key) + "  " + styles.DimmedText.Render(helpStr.Desc)
			lines = append(lines, line)
		}
		lines = append(lines, "")
	}

	lines = append(lines, styles.DimmedText.Render("Press ? to close"))

	return styles.HelpBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
