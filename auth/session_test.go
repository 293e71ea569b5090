package auth

import (
	"context"
	"errors"
	"testing"

	"transport-admin/models"
)

type fakeFetcher struct {
	user *models.User
	err  error
}

func (f *fakeFetcher) Me(ctx context.Context) (*models.User, error) {
	return f.user, f.err
}

func TestSession_LoginRoundTrip(t *testing.T) {
	store := NewMemoryTokenStore()
	sess := NewSession(store, &fakeFetcher{user: &models.User{ID: 7, Role: "admin"}})

	if err := sess.Login(context.Background(), "tok-123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Fatalf("expected authenticated after login")
	}
	if sess.User().ID != 7 {
		t.Fatalf("user = %+v, want id 7", sess.User())
	}
	if sess.Loading() {
		t.Fatalf("loading flag should be cleared after fetch")
	}

	if err := sess.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sess.IsAuthenticated() {
		t.Fatalf("expected unauthenticated after logout")
	}
	if tok, _ := store.Token(context.Background()); tok != "" {
		t.Fatalf("token should be cleared on logout, got %q", tok)
	}
}

func TestSession_FetchFailureClearsToken(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Save(context.Background(), "expired")
	sess := NewSession(store, &fakeFetcher{err: errors.New("401 unauthorized")})

	if err := sess.FetchProfile(context.Background()); err == nil {
		t.Fatalf("expected fetch error")
	}
	if sess.User() != nil {
		t.Fatalf("user should be nil after failed fetch")
	}
	if tok, _ := store.Token(context.Background()); tok != "" {
		t.Fatalf("stored token should be removed after failed fetch, got %q", tok)
	}
	if sess.Loading() {
		t.Fatalf("loading flag should be cleared even on failure")
	}
}

func TestSession_NoTokenFinishesLoggedOut(t *testing.T) {
	sess := NewSession(NewMemoryTokenStore(), &fakeFetcher{user: &models.User{ID: 1}})
	if err := sess.FetchProfile(context.Background()); err != nil {
		t.Fatalf("FetchProfile without token: %v", err)
	}
	if sess.IsAuthenticated() {
		t.Fatalf("no token must mean unauthenticated")
	}
	if sess.Loading() {
		t.Fatalf("loading flag should be cleared")
	}
}
