package api

import (
	"context"
	"log"
	"net/http"

	"transport-admin/events"
	"transport-admin/models"
)

// publish fires an event without failing the request when the broker is
// down.
func (s *Server) publish(r *http.Request, eventType string, payload interface{}) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(context.Background(), events.NewEvent(eventType, payload)); err != nil {
		log.Printf("publish %s: %v", eventType, err)
	}
}

func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.Backend.ListNotifications(r.Context(), queryID(r, "user_id"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "notification_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid notification ID")
		return
	}
	if err := s.Backend.MarkNotificationRead(r.Context(), id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "notification read"})
}

func (s *Server) SendNotification(w http.ResponseWriter, r *http.Request) {
	var n models.Notification
	if err := decodeBody(r, &n); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.SendNotification(r.Context(), &n)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &body); err != nil || body.Email == "" {
		respondError(w, http.StatusUnprocessableEntity, "email is required")
		return
	}
	if err := s.Backend.RequestPasswordReset(r.Context(), body.Email); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "reset code sent"})
}

func (s *Server) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := decodeBody(r, &body); err != nil || body.Email == "" || body.Code == "" || body.NewPassword == "" {
		respondError(w, http.StatusUnprocessableEntity, "email, code and new_password are required")
		return
	}
	if err := s.Backend.ConfirmPasswordReset(r.Context(), body.Email, body.Code, body.NewPassword); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (s *Server) ListMaintenanceRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.Backend.ListMaintenanceRecords(r.Context(), queryID(r, "vehicle_id"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (s *Server) CreateMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	var record models.MaintenanceRecord
	if err := decodeBody(r, &record); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateMaintenanceRecord(r.Context(), &record)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) ListParts(w http.ResponseWriter, r *http.Request) {
	parts, err := s.Backend.ListParts(r.Context())
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, parts)
}

func (s *Server) CreatePart(w http.ResponseWriter, r *http.Request) {
	var part models.Part
	if err := decodeBody(r, &part); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreatePart(r.Context(), &part)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) CostAnalysis(w http.ResponseWriter, r *http.Request) {
	vehicleID := queryID(r, "vehicle_id")
	if vehicleID == 0 {
		respondError(w, http.StatusBadRequest, "vehicle_id is required")
		return
	}
	analysis, err := s.Backend.CostAnalysis(r.Context(), vehicleID)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, analysis)
}

func (s *Server) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Backend.AnalyticsSummary(r.Context())
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
