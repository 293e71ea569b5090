package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"transport-admin/auth"
	"transport-admin/models"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := auth.NewMemoryTokenStore()
	if token != "" {
		store.Save(context.Background(), token)
	}
	return NewClient(srv.URL, store)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.User{ID: 1})
	}), "tok-abc")

	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("Authorization = %q, want Bearer tok-abc", gotAuth)
	}
}

func TestClient_NoHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Booking{})
	}), "")

	if _, err := client.ListBookings(context.Background(), ""); err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
}

func TestClient_ErrorDetailExtraction(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "booking not found"})
	}), "tok")

	_, err := client.GetBooking(context.Background(), 99)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "booking not found" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestClient_ErrorMessageFallbacks(t *testing.T) {
	// "message" field honored when "detail" is absent.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "forbidden"})
	}), "tok")
	_, err := client.GetUser(context.Background(), 1)
	if apiErr, ok := err.(*APIError); !ok || apiErr.Message != "forbidden" {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unparseable body falls back to a generic message.
	client = newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}), "tok")
	_, err = client.GetUser(context.Background(), 1)
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected error: %v", err)
	}
	if apiErr.Message == "" {
		t.Fatalf("expected generic fallback message")
	}
}

func TestClient_MeDecodesUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Errorf("path = %s, want /auth/me", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.User{ID: 42, Name: "Ops", Role: "admin", IsActive: true})
	}), "tok")

	user, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.ID != 42 || user.Role != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestSession_AgainstLiveClient(t *testing.T) {
	// Profile fetch failure must clear the stored token, exercised
	// through the real client rather than a fake fetcher.
	calls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
	}), "stale")

	sess := auth.NewSession(client.tokens, client)
	if err := sess.FetchProfile(context.Background()); err == nil {
		t.Fatalf("expected error from expired token")
	}
	if calls != 1 {
		t.Fatalf("expected one whoami call, got %d", calls)
	}
	if tok, _ := client.tokens.Token(context.Background()); tok != "" {
		t.Fatalf("token should have been cleared, got %q", tok)
	}
	if sess.IsAuthenticated() {
		t.Fatalf("session must be unauthenticated after failed fetch")
	}
}
