// Package screens holds the four screens of the app and the navigation
// graph that connects them.
package screens

import "github.com/espen/lazynav/internal/nav"

// Destinations returns the navigation graph
func Destinations() []nav.Destination {
	return []nav.Destination{
		{
			Route: nav.Home,
			Title: "Home",
			Links: []nav.Route{nav.Detail, nav.Profile, nav.Settings},
			Build: NewHome,
		},
		{
			Route: nav.Detail,
			Title: "Detail",
			Build: NewDetail,
		},
		{
			Route: nav.Profile,
			Title: "Profile",
			Links: []nav.Route{nav.Settings},
			Build: NewProfile,
		},
		{
			Route: nav.Settings,
			Title: "Settings",
			Links: []nav.Route{nav.Home},
			Build: NewSettings,
		},
	}
}

// NewRegistry registers every screen
func NewRegistry() (*nav.Registry, error) {
	reg := nav.NewRegistry()
	for _, d := range Destinations() {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// chrome is the number of rows a screen spends above its menu
const chrome = 3
