package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esawctha/esawctha/models"
)

func sessionWithRole(role models.Role) models.Session {
	return models.Session{User: &models.User{UserID: 1, Name: "u", Email: "u@x.io", Role: role}}
}

func TestDecide(t *testing.T) {
	anonymous := models.Session{}
	seller := sessionWithRole(models.RoleSeller)
	waste := sessionWithRole(models.RoleWasteManagement)
	noRole := sessionWithRole(models.RoleNone)

	tests := []struct {
		name    string
		session models.Session
		path    Route
		want    Decision
	}{
		// Auth pages: open to visitors, bounced for signed-in users.
		{"anonymous login", anonymous, RouteLogin, Decision{Action: Render}},
		{"anonymous signup", anonymous, RouteSignup, Decision{Action: Render}},
		{"seller login redirects home", seller, RouteLogin, Decision{Action: Redirect, Target: RouteHome}},
		{"waste login redirects to own dashboard", waste, RouteLogin, Decision{Action: Redirect, Target: RouteWasteDashboard}},
		{"no-role signup redirects home", noRole, RouteSignup, Decision{Action: Redirect, Target: RouteHome}},

		// General routes: any authenticated session; visitors go to login.
		{"anonymous home", anonymous, RouteHome, Decision{Action: Redirect, Target: RouteLogin}},
		{"anonymous dashboard", anonymous, RouteDashboard, Decision{Action: Redirect, Target: RouteLogin}},
		{"seller home", seller, RouteHome, Decision{Action: Render}},
		{"waste listings", waste, RouteListings, Decision{Action: Render}},
		{"no-role predict", noRole, RoutePredict, Decision{Action: Render}},
		{"no-role results", noRole, RouteResults, Decision{Action: Render}},
		{"no-role info", noRole, RouteInfo, Decision{Action: Render}},

		// Seller-only routes: the role gate is uniform, a different role is
		// treated like no authorization at all.
		{"seller sell", seller, RouteSell, Decision{Action: Render}},
		{"seller waste lookup", seller, RouteWasteLookup, Decision{Action: Render}},
		{"anonymous sell", anonymous, RouteSell, Decision{Action: Redirect, Target: RouteLogin}},
		{"no-role sell", noRole, RouteSell, Decision{Action: Redirect, Target: RouteLogin}},
		{"waste role on sell", waste, RouteSell, Decision{Action: Redirect, Target: RouteLogin}},
		{"waste role on waste lookup", waste, RouteWasteLookup, Decision{Action: Redirect, Target: RouteLogin}},

		// Waste-management dashboard: waste-management role only.
		{"waste own dashboard", waste, RouteWasteDashboard, Decision{Action: Render}},
		{"seller on waste dashboard", seller, RouteWasteDashboard, Decision{Action: Redirect, Target: RouteLogin}},
		{"no-role on waste dashboard", noRole, RouteWasteDashboard, Decision{Action: Redirect, Target: RouteLogin}},
		{"anonymous on waste dashboard", anonymous, RouteWasteDashboard, Decision{Action: Redirect, Target: RouteLogin}},

		// Unknown paths: never render.
		{"anonymous unknown path", anonymous, Route("/nope"), Decision{Action: Redirect, Target: RouteLogin}},
		{"seller unknown path", seller, Route("/nope"), Decision{Action: Redirect, Target: RouteHome}},
		{"waste unknown path", waste, Route("/nope"), Decision{Action: Redirect, Target: RouteWasteDashboard}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.session, tt.path))
		})
	}
}

func TestDecide_IsPure(t *testing.T) {
	seller := sessionWithRole(models.RoleSeller)

	first := Decide(seller, RouteSell)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Decide(seller, RouteSell))
	}
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, RouteWasteDashboard, HomeFor(sessionWithRole(models.RoleWasteManagement)))
	assert.Equal(t, RouteHome, HomeFor(sessionWithRole(models.RoleSeller)))
	assert.Equal(t, RouteHome, HomeFor(sessionWithRole(models.RoleNone)))
	assert.Equal(t, RouteHome, HomeFor(models.Session{}))
}
