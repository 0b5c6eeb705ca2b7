// Package router holds the route surface and the guard deciding, for each
// navigation, whether the target page renders or the user is redirected.
// The guard is a pure function of (session, path): it keeps no state and is
// re-evaluated on every route change.
package router

import (
	"github.com/esawctha/esawctha/models"
)

// Action is the renderable outcome of a guard decision.
type Action int

const (
	// Render shows the requested page.
	Render Action = iota
	// Redirect silently navigates to Decision.Target instead. Unauthorized
	// access never produces a visible error page.
	Redirect
)

// Decision is the guard's verdict for one navigation event.
type Decision struct {
	Action Action
	Target Route
}

func render() Decision { return Decision{Action: Render} }

func redirectTo(target Route) Decision { return Decision{Action: Redirect, Target: target} }

// Decide evaluates one navigation request against the current session.
//
// Role gating is uniform: seller-only routes require the seller role, the
// waste-management dashboard requires the waste-management role, and a user
// with no role tag is allowed only on general authenticated routes — never
// on role-gated ones.
func Decide(session models.Session, path Route) Decision {
	switch classify(path) {
	case classAuth:
		if !session.Authenticated() {
			return render()
		}
		return redirectTo(HomeFor(session))

	case classSellerOnly:
		if session.Role() == models.RoleSeller {
			return render()
		}
		return redirectTo(RouteLogin)

	case classGeneral:
		if session.Authenticated() {
			return render()
		}
		return redirectTo(RouteLogin)

	case classWasteDashboard:
		if session.Role() == models.RoleWasteManagement {
			return render()
		}
		return redirectTo(RouteLogin)

	default:
		if session.Authenticated() {
			return redirectTo(HomeFor(session))
		}
		return redirectTo(RouteLogin)
	}
}

// HomeFor returns the landing route for a session: the waste-management
// dashboard for waste-management accounts, the home page for everyone else.
func HomeFor(session models.Session) Route {
	if session.Role() == models.RoleWasteManagement {
		return RouteWasteDashboard
	}
	return RouteHome
}
