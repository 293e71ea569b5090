package auth

import (
	"context"
	"sync"

	"transport-admin/models"
)

// ProfileFetcher resolves the current user from the backend's whoami
// endpoint. Satisfied by backend.Client.
type ProfileFetcher interface {
	Me(ctx context.Context) (*models.User, error)
}

// Session is the single source of truth for who is logged in. All state is
// constructor-injected; there is no package-level session.
type Session struct {
	tokens   TokenStore
	profiles ProfileFetcher

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

func NewSession(tokens TokenStore, profiles ProfileFetcher) *Session {
	return &Session{tokens: tokens, profiles: profiles, loading: true}
}

// Login persists the bearer token and refreshes the profile from it.
func (s *Session) Login(ctx context.Context, token string) error {
	if err := s.tokens.Save(ctx, token); err != nil {
		return err
	}
	return s.FetchProfile(ctx)
}

// Logout clears the stored token and the in-memory user.
func (s *Session) Logout(ctx context.Context) error {
	err := s.tokens.Clear(ctx)
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return err
}

// FetchProfile loads the current user for the stored token. With no token
// it finishes with a nil user; on any fetch failure the stored token is
// cleared. The loading flag is always cleared before returning.
func (s *Session) FetchProfile(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.tokens.Token(ctx)
	if err != nil || token == "" {
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return err
	}

	user, err := s.profiles.Me(ctx)
	if err != nil {
		s.tokens.Clear(ctx)
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// User returns the current profile, or nil when logged out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// Loading reports whether the initial profile fetch is still in flight.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
