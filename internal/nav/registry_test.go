package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(Destination{Route: Home, Build: fakeFactory("Home")}))

	err := reg.Register(Destination{Route: Home, Build: fakeFactory("Home")})
	assert.ErrorIs(t, err, ErrDuplicateRoute)

	err = reg.Register(Destination{Route: Detail})
	assert.Error(t, err)

	d, ok := reg.Lookup(Home)
	require.True(t, ok)
	assert.Equal(t, "home", d.Title, "title defaults to the route name")
}

func TestRegistry_RoutesKeepsOrder(t *testing.T) {
	reg := testRegistry(t)

	assert.Equal(t, []Route{Home, Detail, Profile, Settings}, reg.Routes())
}

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*Registry)
		start   Route
		wantErr bool
	}{
		{
			name:  "complete graph",
			setup: func(*Registry) {},
			start: Home,
		},
		{
			name:    "unknown start",
			setup:   func(*Registry) {},
			start:   Route("nowhere"),
			wantErr: true,
		},
		{
			name: "dangling link",
			setup: func(r *Registry) {
				_ = r.Register(Destination{Route: "about", Links: []Route{"credits"}, Build: fakeFactory("About")})
			},
			start:   Home,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testRegistry(t)
			tt.setup(reg)

			err := reg.Validate(tt.start)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRoute)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegistry_ValidateRequiresHome(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Destination{Route: Detail, Build: fakeFactory("Detail")}))

	assert.ErrorIs(t, reg.Validate(Detail), ErrUnknownRoute)
}

func TestParseRoute(t *testing.T) {
	assert.Equal(t, Settings, ParseRoute("  Settings "))
	assert.Equal(t, Route(""), ParseRoute(""))
}
