package api

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"transport-admin/models"
	"transport-admin/tracking"
)

// CalculateETA implements POST /api/tracking/eta.
func (s *Server) CalculateETA(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("eta handler panic: %v", rec)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
	}()

	var req tracking.ETARequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "request body is not valid JSON")
		return
	}

	resp, err := tracking.ComputeETA(&req, time.Now())
	if err != nil {
		var verr *tracking.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusUnprocessableEntity, verr.Message)
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// TrackingDashboard implements GET /api/tracking/dashboard against
// whichever provider is wired (fixture or store).
func (s *Server) TrackingDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := s.Dashboard.Dashboard(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// RecordLocation ingests a truck location ping.
func (s *Server) RecordLocation(w http.ResponseWriter, r *http.Request) {
	if s.Tracker == nil {
		respondError(w, http.StatusServiceUnavailable, "tracking store is not configured")
		return
	}

	var ping models.LocationPing
	if err := decodeBody(r, &ping); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	if ping.TruckID == 0 {
		respondError(w, http.StatusUnprocessableEntity, "truck_id is required")
		return
	}
	if ping.Latitude < -90 || ping.Latitude > 90 {
		respondError(w, http.StatusUnprocessableEntity, "latitude must be between -90 and 90")
		return
	}
	if ping.Longitude < -180 || ping.Longitude > 180 {
		respondError(w, http.StatusUnprocessableEntity, "longitude must be between -180 and 180")
		return
	}

	alerts, err := s.Tracker.RecordPing(r.Context(), &ping)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to record location")
		return
	}
	respondJSON(w, http.StatusCreated, tracking.PingUpdate{Ping: ping, Alerts: alerts})
}

// NearbyVehicles lists latest pings around a point from the live index.
func (s *Server) NearbyVehicles(w http.ResponseWriter, r *http.Request) {
	if s.Live == nil {
		respondError(w, http.StatusServiceUnavailable, "live index is not configured")
		return
	}
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		respondError(w, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}
	pings, err := s.Live.Nearby(r.Context(), lat, lng)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to query live index")
		return
	}
	if pings == nil {
		pings = []models.LocationPing{}
	}
	respondJSON(w, http.StatusOK, pings)
}

// LiveFeed upgrades to a websocket and streams ping updates.
func (s *Server) LiveFeed(w http.ResponseWriter, r *http.Request) {
	if s.Hub == nil {
		respondError(w, http.StatusServiceUnavailable, "live feed is not configured")
		return
	}
	s.Hub.ServeWS(w, r)
}

func (s *Server) ListGeofences(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		respondError(w, http.StatusServiceUnavailable, "tracking store is not configured")
		return
	}
	fences, err := s.Store.ListGeofences(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list geofences")
		return
	}
	if fences == nil {
		fences = []models.Geofence{}
	}
	respondJSON(w, http.StatusOK, fences)
}

func (s *Server) CreateGeofence(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		respondError(w, http.StatusServiceUnavailable, "tracking store is not configured")
		return
	}
	fence, ok := s.decodeGeofence(w, r)
	if !ok {
		return
	}
	if err := s.Store.CreateGeofence(r.Context(), fence); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create geofence")
		return
	}
	s.reloadFences(r)
	respondJSON(w, http.StatusCreated, fence)
}

func (s *Server) UpdateGeofence(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		respondError(w, http.StatusServiceUnavailable, "tracking store is not configured")
		return
	}
	id, err := pathID(r, "geofence_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid geofence ID")
		return
	}
	fence, ok := s.decodeGeofence(w, r)
	if !ok {
		return
	}
	fence.ID = id
	if err := s.Store.UpdateGeofence(r.Context(), fence); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "geofence not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update geofence")
		return
	}
	s.reloadFences(r)
	respondJSON(w, http.StatusOK, fence)
}

func (s *Server) DeleteGeofence(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		respondError(w, http.StatusServiceUnavailable, "tracking store is not configured")
		return
	}
	id, err := pathID(r, "geofence_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid geofence ID")
		return
	}
	if err := s.Store.DeleteGeofence(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "geofence not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete geofence")
		return
	}
	s.reloadFences(r)
	respondJSON(w, http.StatusOK, map[string]string{"message": "geofence deleted"})
}

func (s *Server) decodeGeofence(w http.ResponseWriter, r *http.Request) (*models.Geofence, bool) {
	var fence models.Geofence
	if err := decodeBody(r, &fence); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return nil, false
	}
	if fence.Name == "" {
		respondError(w, http.StatusUnprocessableEntity, "name is required")
		return nil, false
	}
	if fence.RadiusKm <= 0 {
		respondError(w, http.StatusUnprocessableEntity, "radius_km must be positive")
		return nil, false
	}
	if fence.CenterLat < -90 || fence.CenterLat > 90 {
		respondError(w, http.StatusUnprocessableEntity, "center_latitude must be between -90 and 90")
		return nil, false
	}
	if fence.CenterLng < -180 || fence.CenterLng > 180 {
		respondError(w, http.StatusUnprocessableEntity, "center_longitude must be between -180 and 180")
		return nil, false
	}
	return &fence, true
}

// reloadFences refreshes the in-memory geofence index after a write.
func (s *Server) reloadFences(r *http.Request) {
	if s.Fences == nil || s.Store == nil {
		return
	}
	fences, err := s.Store.ListGeofences(r.Context(), true)
	if err != nil {
		log.Printf("reload geofence index: %v", err)
		return
	}
	s.Fences.Reload(fences)
}
