package api

import (
	"net/http"

	"transport-admin/auth"
	"transport-admin/models"
)

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Backend.ListUsers(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}
	user, err := s.Backend.GetUser(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeBody(r, &user); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateUser(r.Context(), &user)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}
	var user models.User
	if err := decodeBody(r, &user); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	updated, err := s.Backend.UpdateUser(r.Context(), id, &user)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}
	if err := s.Backend.DeleteUser(r.Context(), id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// UpdateUserRole validates the role against the closed set before
// forwarding the change.
func (s *Server) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}
	var body struct {
		Role string `json:"role"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	role, err := auth.ParseRole(body.Role)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	updated, err := s.Backend.UpdateUserRole(r.Context(), id, string(role))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
