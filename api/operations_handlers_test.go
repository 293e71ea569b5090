package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"transport-admin/auth"
	"transport-admin/backend"
	"transport-admin/middleware"
	"transport-admin/tracking"
)

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "u1",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

// Every resource write the client exposes must be reachable through a
// route; verified here for the booking update, trip status and payment
// creation paths.
func TestResourceRoutes_ReachBackend(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var mu sync.Mutex
	var calls []call
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, call{r.Method, r.URL.Path})
		mu.Unlock()
		json.NewEncoder(w).Encode(map[string]int64{"id": 7})
	}))
	t.Cleanup(backendSrv.Close)

	client := backend.NewClient(backendSrv.URL, auth.NewMemoryTokenStore())
	router := RegisterRoutes(&Server{
		Backend:   client,
		Dashboard: &tracking.StaticProvider{},
	}, middleware.NewAuthMiddleware("test-secret"))
	token := signTestToken(t, "admin")

	cases := []struct {
		method   string
		path     string
		body     string
		wantCode int
		wantCall call
	}{
		{"PUT", "/bookings/7", `{"status":"confirmed"}`, http.StatusOK, call{"PUT", "/bookings/7"}},
		{"PATCH", "/trips/9/status", `{"status":"in_progress"}`, http.StatusOK, call{"PATCH", "/trips/9/status"}},
		{"POST", "/payments", `{"booking_id":7}`, http.StatusCreated, call{"POST", "/payments"}},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != tc.wantCode {
			t.Fatalf("%s %s: status = %d, want %d (body %s)", tc.method, tc.path, rec.Code, tc.wantCode, rec.Body.String())
		}
		mu.Lock()
		got := calls[len(calls)-1]
		mu.Unlock()
		if got != tc.wantCall {
			t.Fatalf("%s %s: backend saw %+v, want %+v", tc.method, tc.path, got, tc.wantCall)
		}
	}
}
