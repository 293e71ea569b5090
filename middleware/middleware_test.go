package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"transport-admin/auth"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, userID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func guarded(secret string) http.Handler {
	am := NewAuthMiddleware(secret)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return am.Wrap(RouteGuard(ok))
}

func TestRouteGuard_RedirectsAnonymousToSignIn(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	guarded(testSecret).ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != auth.SignInRoute {
		t.Fatalf("redirect = %q, want %q", loc, auth.SignInRoute)
	}
}

func TestRouteGuard_AllowsPermittedRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookings/15", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u1", "staff"))
	rec := httptest.NewRecorder()
	guarded(testSecret).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouteGuard_RedirectsDeniedRoleHome(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u2", "driver"))
	rec := httptest.NewRecorder()
	guarded(testSecret).ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	want := auth.DefaultDashboardRoute(auth.RoleDriver)
	if loc := rec.Header().Get("Location"); loc != want {
		t.Fatalf("redirect = %q, want %q", loc, want)
	}
}

func TestAuthMiddleware_BadTokenTreatedAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", "u3", "admin"))
	rec := httptest.NewRecorder()
	guarded(testSecret).ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != auth.SignInRoute {
		t.Fatalf("tampered token must redirect to sign-in, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestAuthMiddleware_UnknownRoleRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u4", "superuser"))
	rec := httptest.NewRecorder()
	guarded(testSecret).ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != auth.SignInRoute {
		t.Fatalf("unknown role must stay anonymous, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
