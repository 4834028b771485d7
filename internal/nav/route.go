package nav

import "strings"

// Route names a navigable screen
type Route string

const (
	Home     Route = "home"
	Detail   Route = "detail"
	Profile  Route = "profile"
	Settings Route = "settings"
)

func (r Route) String() string { return string(r) }

// ParseRoute normalizes user input such as a --start flag into a Route.
// It does not check the route against a registry.
func ParseRoute(s string) Route {
	return Route(strings.ToLower(strings.TrimSpace(s)))
}
