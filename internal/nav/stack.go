package nav

// entry is one visited route together with its live screen
type entry struct {
	route  Route
	screen Screen
}

// BackStack holds the navigation history, most recent last
type BackStack struct {
	entries []entry
}

// NewBackStack creates an empty back stack
func NewBackStack() *BackStack {
	return &BackStack{
		entries: make([]entry, 0),
	}
}

// Push adds a screen to the top of the stack
func (s *BackStack) Push(route Route, screen Screen) {
	s.entries = append(s.entries, entry{route: route, screen: screen})
}

// Pop removes and returns the top screen
func (s *BackStack) Pop() Screen {
	if len(s.entries) == 0 {
		return nil
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e.screen
}

// Current returns the top screen without removing it
func (s *BackStack) Current() Screen {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].screen
}

// CurrentRoute returns the route of the top entry
func (s *BackStack) CurrentRoute() Route {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[len(s.entries)-1].route
}

// ReplaceCurrent swaps the top screen for an updated copy of itself
func (s *BackStack) ReplaceCurrent(screen Screen) {
	if len(s.entries) == 0 {
		return
	}
	s.entries[len(s.entries)-1].screen = screen
}

// LastIndex returns the index of the most recent entry for route, or -1
func (s *BackStack) LastIndex(route Route) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].route == route {
			return i
		}
	}
	return -1
}

// Truncate drops every entry at index n and above
func (s *BackStack) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(s.entries) {
		return
	}
	clear(s.entries[n:])
	s.entries = s.entries[:n]
}

// Len returns the number of entries in the stack
func (s *BackStack) Len() int {
	return len(s.entries)
}

// Routes returns the routes in the stack, root first
func (s *BackStack) Routes() []Route {
	routes := make([]Route, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.route
	}
	return routes
}

// Breadcrumbs returns the titles of all screens for navigation display
func (s *BackStack) Breadcrumbs() []string {
	titles := make([]string, len(s.entries))
	for i, e := range s.entries {
		titles[i] = e.screen.Title()
	}
	return titles
}
