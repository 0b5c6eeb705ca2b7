package router

// Route is a client-side navigation path. These are page identifiers inside
// one process, not server endpoints.
type Route string

const (
	RouteHome           Route = "/"
	RouteLogin          Route = "/login"
	RouteSignup         Route = "/signup"
	RouteDashboard      Route = "/dashboard"
	RouteWasteDashboard Route = "/waste-management-dashboard"
	RouteSell           Route = "/sell"
	RouteListings       Route = "/listings"
	RouteWasteLookup    Route = "/waste-management"
	RoutePredict        Route = "/predict"
	RouteResults        Route = "/results"
	RouteInfo           Route = "/info"
)

// routeClass partitions the route surface for the guard's decision table.
type routeClass int

const (
	classUnknown routeClass = iota
	// classAuth covers the login and signup pages.
	classAuth
	// classSellerOnly covers routes gated on the seller role.
	classSellerOnly
	// classGeneral covers routes any authenticated user may visit.
	classGeneral
	// classWasteDashboard covers the waste-management dashboard.
	classWasteDashboard
)

func classify(path Route) routeClass {
	switch path {
	case RouteLogin, RouteSignup:
		return classAuth
	case RouteSell, RouteWasteLookup:
		return classSellerOnly
	case RouteHome, RouteDashboard, RouteListings, RoutePredict, RouteResults, RouteInfo:
		return classGeneral
	case RouteWasteDashboard:
		return classWasteDashboard
	default:
		return classUnknown
	}
}
