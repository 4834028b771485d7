package nav

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRoute is returned when a route has no registered destination
	ErrUnknownRoute = errors.New("unknown route")

	// ErrDuplicateRoute is returned when a route is registered twice
	ErrDuplicateRoute = errors.New("duplicate route")
)

// Factory builds a fresh screen. It receives the controller that will own it.
type Factory func(c *Controller) Screen

// Destination binds a route to the screen it renders
type Destination struct {
	Route Route
	Title string
	// Links lists every route the screen can navigate to
	Links []Route
	Build Factory
}

// Registry is the navigation graph: routes, their screens and their links
type Registry struct {
	order        []Route
	destinations map[Route]Destination
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		destinations: make(map[Route]Destination),
	}
}

// Register adds a destination to the graph
func (r *Registry) Register(d Destination) error {
	if d.Route == "" {
		return fmt.Errorf("register: empty route: %w", ErrUnknownRoute)
	}
	if _, ok := r.destinations[d.Route]; ok {
		return fmt.Errorf("register %q: %w", d.Route, ErrDuplicateRoute)
	}
	if d.Build == nil {
		return fmt.Errorf("register %q: missing screen factory", d.Route)
	}
	if d.Title == "" {
		d.Title = string(d.Route)
	}
	r.destinations[d.Route] = d
	r.order = append(r.order, d.Route)
	return nil
}

// Lookup returns the destination registered for route
func (r *Registry) Lookup(route Route) (Destination, bool) {
	d, ok := r.destinations[route]
	return d, ok
}

// Title returns the display title for route, or the raw route name
func (r *Registry) Title(route Route) string {
	if d, ok := r.destinations[route]; ok {
		return d.Title
	}
	return string(route)
}

// Routes returns registered routes in registration order
func (r *Registry) Routes() []Route {
	routes := make([]Route, len(r.order))
	copy(routes, r.order)
	return routes
}

// Validate checks that start and every declared link resolve to a
// registered destination. All problems are reported together.
func (r *Registry) Validate(start Route) error {
	var errs []error
	if _, ok := r.destinations[start]; !ok {
		errs = append(errs, fmt.Errorf("start route %q: %w", start, ErrUnknownRoute))
	}
	if _, ok := r.destinations[Home]; !ok {
		errs = append(errs, fmt.Errorf("root route %q: %w", Home, ErrUnknownRoute))
	}
	for _, route := range r.order {
		for _, link := range r.destinations[route].Links {
			if _, ok := r.destinations[link]; !ok {
				errs = append(errs, fmt.Errorf("%q links to %q: %w", route, link, ErrUnknownRoute))
			}
		}
	}
	return errors.Join(errs...)
}
