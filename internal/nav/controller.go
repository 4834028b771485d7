package nav

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// PopUpTo describes how far NavigateClearing unwinds the back stack
type PopUpTo struct {
	Route     Route
	Inclusive bool
}

// Controller owns the back stack and builds screens from the registry.
// It is not safe for concurrent use; the bubbletea update loop is its only caller.
type Controller struct {
	registry *Registry
	stack    *BackStack
	logger   *slog.Logger
	size     tea.WindowSizeMsg
}

// NewController creates a controller rooted at Home. A start route other
// than Home is pushed on top so Home always stays at the bottom.
func NewController(reg *Registry, start Route, logger *slog.Logger) (*Controller, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Controller{
		registry: reg,
		stack:    NewBackStack(),
		logger:   logger,
	}

	if _, err := c.Navigate(Home); err != nil {
		return nil, err
	}
	if start != "" && start != Home {
		if _, err := c.Navigate(start); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Navigate pushes a fresh screen for route. Navigating to the current route
// pushes a second copy.
func (c *Controller) Navigate(route Route) (tea.Cmd, error) {
	screen, err := c.build(route)
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}
	c.stack.Push(route, screen)
	c.logger.Debug("navigate", "route", route, "depth", c.stack.Len())
	return screen.Init(), nil
}

// NavigateUp pops the current screen. At the root it does nothing and
// returns false.
func (c *Controller) NavigateUp() bool {
	if c.stack.Len() <= 1 {
		c.logger.Debug("navigate up ignored at root")
		return false
	}
	c.stack.Pop()
	c.refit()
	c.logger.Debug("navigate up", "route", c.stack.CurrentRoute(), "depth", c.stack.Len())
	return true
}

// NavigateClearing unwinds the stack to the most recent popUpTo.Route
// (removing it too when Inclusive) and then pushes route. When popUpTo.Route
// is not on the stack nothing is popped.
func (c *Controller) NavigateClearing(route Route, popUpTo PopUpTo) (tea.Cmd, error) {
	if _, ok := c.registry.Lookup(popUpTo.Route); !ok {
		return nil, fmt.Errorf("navigate clearing: pop up to %q: %w", popUpTo.Route, ErrUnknownRoute)
	}
	screen, err := c.build(route)
	if err != nil {
		return nil, fmt.Errorf("navigate clearing: %w", err)
	}

	if i := c.stack.LastIndex(popUpTo.Route); i >= 0 {
		keep := i + 1
		if popUpTo.Inclusive {
			keep = i
		}
		c.stack.Truncate(keep)
	}
	c.stack.Push(route, screen)
	c.logger.Debug("navigate clearing",
		"route", route,
		"pop_up_to", popUpTo.Route,
		"inclusive", popUpTo.Inclusive,
		"depth", c.stack.Len(),
	)
	return screen.Init(), nil
}

// Update forwards msg to the current screen and keeps the updated model
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	current := c.stack.Current()
	if current == nil {
		return nil
	}
	updated, cmd := current.Update(msg)
	if s, ok := updated.(Screen); ok {
		c.stack.ReplaceCurrent(s)
	}
	return cmd
}

// Resize records the content area size and passes it to the current screen.
// Screens pushed or uncovered later receive it when they become current.
func (c *Controller) Resize(width, height int) tea.Cmd {
	c.size = tea.WindowSizeMsg{Width: width, Height: height}
	return c.Update(c.size)
}

// Current returns the screen on top of the stack
func (c *Controller) Current() Screen {
	return c.stack.Current()
}

// CurrentRoute returns the route on top of the stack
func (c *Controller) CurrentRoute() Route {
	return c.stack.CurrentRoute()
}

// Previous returns the route NavigateUp would return to
func (c *Controller) Previous() (Route, bool) {
	routes := c.stack.Routes()
	if len(routes) < 2 {
		return "", false
	}
	return routes[len(routes)-2], true
}

// Len returns the back stack depth
func (c *Controller) Len() int {
	return c.stack.Len()
}

// Routes returns the back stack, root first
func (c *Controller) Routes() []Route {
	return c.stack.Routes()
}

// Breadcrumbs returns the screen titles of the back stack, root first
func (c *Controller) Breadcrumbs() []string {
	return c.stack.Breadcrumbs()
}

// Title returns the registered title of route
func (c *Controller) Title(route Route) string {
	return c.registry.Title(route)
}

func (c *Controller) build(route Route) (Screen, error) {
	d, ok := c.registry.Lookup(route)
	if !ok {
		return nil, fmt.Errorf("route %q: %w", route, ErrUnknownRoute)
	}
	return c.fit(d.Build(c)), nil
}

// fit hands the last known content size to a screen before it is shown
func (c *Controller) fit(s Screen) Screen {
	if c.size.Width == 0 && c.size.Height == 0 {
		return s
	}
	updated, _ := s.Update(c.size)
	if fitted, ok := updated.(Screen); ok {
		return fitted
	}
	return s
}

func (c *Controller) refit() {
	if current := c.stack.Current(); current != nil {
		c.stack.ReplaceCurrent(c.fit(current))
	}
}
