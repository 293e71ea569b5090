package middleware

import (
	"errors"
	"net/http"

	"transport-admin/auth"
)

var (
	errMissingToken    = errors.New("missing bearer token")
	errMalformedHeader = errors.New("malformed authorization header")
	errSigningMethod   = errors.New("unexpected signing method")
	errInvalidToken    = errors.New("invalid token")
	errInvalidClaims   = errors.New("invalid claims")
)

// RouteGuard enforces the canonical role route table. Unauthenticated
// requests are sent to the sign-in page; authenticated requests outside
// the role's allow list are sent to the role's own dashboard. Both
// redirects are silent.
func RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, auth.SignInRoute, http.StatusFound)
			return
		}
		if !auth.IsRouteAccessible(p.Role, r.URL.Path) {
			http.Redirect(w, r, auth.DefaultDashboardRoute(p.Role), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
