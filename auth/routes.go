package auth

import "strings"

// SignInRoute is where unauthenticated requests get redirected.
const SignInRoute = "/signin"

// roleRoutes is the single canonical route-access table. A listed path
// grants the exact path and everything under it ("/bookings" also grants
// "/bookings/42"), so parent paths act as coarse wildcards.
var roleRoutes = map[Role][]string{
	RoleAdmin: {
		"/admin",
		"/users",
		"/bookings",
		"/payments",
		"/dispatches",
		"/trips",
		"/vehicles",
		"/trucks",
		"/fleets",
		"/drivers",
		"/notifications",
		"/services",
		"/analytics",
		"/tracking",
	},
	RoleStaff: {
		"/staff",
		"/bookings",
		"/dispatches",
		"/trips",
		"/notifications",
		"/tracking",
	},
	RoleCustomer: {
		"/customer",
		"/bookings",
		"/payments",
		"/notifications",
	},
	RoleDriver: {
		"/driver",
		"/trips",
		"/notifications",
	},
	RoleDispatcher: {
		"/dispatch",
		"/dispatches",
		"/trips",
		"/drivers",
		"/trucks",
		"/tracking",
	},
	RolePublicServiceManager: {
		"/public-transport",
		"/fleets",
		"/vehicles",
		"/trips",
		"/tracking",
	},
}

// defaultRoutes is the per-role home used for redirect-on-denial.
var defaultRoutes = map[Role]string{
	RoleAdmin:                "/admin/dashboard",
	RoleStaff:                "/staff/dashboard",
	RoleCustomer:             "/customer/dashboard",
	RoleDriver:               "/driver/dashboard",
	RoleDispatcher:           "/dispatch/dashboard",
	RolePublicServiceManager: "/public-transport/dashboard",
}

// RoutesForRole returns a copy of the allowed-path list for a role.
func RoutesForRole(role Role) []string {
	paths := roleRoutes[role]
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

// IsRouteAccessible reports whether a role may visit a path. A path is
// accessible when it exactly equals, or starts with, any listed path.
func IsRouteAccessible(role Role, path string) bool {
	for _, allowed := range roleRoutes[role] {
		if path == allowed || strings.HasPrefix(path, allowed) {
			return true
		}
	}
	return false
}

// DefaultDashboardRoute returns the role's home path; unknown roles land
// on the root.
func DefaultDashboardRoute(role Role) string {
	if route, ok := defaultRoutes[role]; ok {
		return route
	}
	return "/"
}
