package api

import (
	"net/http"
)

// Login stores the backend-issued token and loads the profile behind it.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := decodeBody(r, &body); err != nil || body.Token == "" {
		respondError(w, http.StatusUnprocessableEntity, "token is required")
		return
	}

	if err := s.Session.Login(r.Context(), body.Token); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.Session.User())
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.Session.Logout(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// SessionInfo returns the current user, or 401 when logged out.
func (s *Server) SessionInfo(w http.ResponseWriter, r *http.Request) {
	user := s.Session.User()
	if user == nil {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
