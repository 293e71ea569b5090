package auth

import "testing"

func TestIsRouteAccessible_ListedAndPrefix(t *testing.T) {
	for _, role := range AllRoles {
		for _, path := range RoutesForRole(role) {
			if !IsRouteAccessible(role, path) {
				t.Fatalf("role %s should access listed path %s", role, path)
			}
			if !IsRouteAccessible(role, path+"/anything") {
				t.Fatalf("role %s should access child of listed path %s", role, path)
			}
		}
	}
}

func TestIsRouteAccessible_UnrelatedPathDenied(t *testing.T) {
	if IsRouteAccessible(RoleDriver, "/payments") {
		t.Fatalf("driver must not access /payments")
	}
	if IsRouteAccessible(RoleCustomer, "/admin/dashboard") {
		t.Fatalf("customer must not access /admin/dashboard")
	}
	if IsRouteAccessible(Role("ghost"), "/bookings") {
		t.Fatalf("unknown role must not access anything")
	}
}

func TestDefaultDashboardRoute_TotalOverRoles(t *testing.T) {
	for _, role := range AllRoles {
		if route := DefaultDashboardRoute(role); route == "" {
			t.Fatalf("empty default route for role %s", role)
		}
	}
	if route := DefaultDashboardRoute(Role("ghost")); route != "/" {
		t.Fatalf("unknown role default = %q, want /", route)
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("dispatcher"); err != nil {
		t.Fatalf("ParseRole(dispatcher): %v", err)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
