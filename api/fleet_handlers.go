package api

import (
	"net/http"

	"transport-admin/models"
)

func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.Backend.ListVehicles(r.Context(), queryID(r, "fleet_id"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "vehicle_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle ID")
		return
	}
	vehicle, err := s.Backend.GetVehicle(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (s *Server) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := decodeBody(r, &vehicle); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateVehicle(r.Context(), &vehicle)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "vehicle_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle ID")
		return
	}
	var vehicle models.Vehicle
	if err := decodeBody(r, &vehicle); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	updated, err := s.Backend.UpdateVehicle(r.Context(), id, &vehicle)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "vehicle_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle ID")
		return
	}
	if err := s.Backend.DeleteVehicle(r.Context(), id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "vehicle deleted"})
}

func (s *Server) ListTrucks(w http.ResponseWriter, r *http.Request) {
	trucks, err := s.Backend.ListTrucks(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trucks)
}

func (s *Server) GetTruck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "truck_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid truck ID")
		return
	}
	truck, err := s.Backend.GetTruck(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, truck)
}

func (s *Server) CreateTruck(w http.ResponseWriter, r *http.Request) {
	var truck models.Truck
	if err := decodeBody(r, &truck); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateTruck(r.Context(), &truck)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateTruck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "truck_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid truck ID")
		return
	}
	var truck models.Truck
	if err := decodeBody(r, &truck); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	updated, err := s.Backend.UpdateTruck(r.Context(), id, &truck)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) DeleteTruck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "truck_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid truck ID")
		return
	}
	if err := s.Backend.DeleteTruck(r.Context(), id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "truck deleted"})
}

func (s *Server) ListFleets(w http.ResponseWriter, r *http.Request) {
	fleets, err := s.Backend.ListFleets(r.Context())
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, fleets)
}

func (s *Server) GetFleet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "fleet_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid fleet ID")
		return
	}
	fleet, err := s.Backend.GetFleet(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, fleet)
}

func (s *Server) CreateFleet(w http.ResponseWriter, r *http.Request) {
	var fleet models.Fleet
	if err := decodeBody(r, &fleet); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateFleet(r.Context(), &fleet)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateFleet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "fleet_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid fleet ID")
		return
	}
	var fleet models.Fleet
	if err := decodeBody(r, &fleet); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	updated, err := s.Backend.UpdateFleet(r.Context(), id, &fleet)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) DeleteFleet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "fleet_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid fleet ID")
		return
	}
	if err := s.Backend.DeleteFleet(r.Context(), id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "fleet deleted"})
}

func (s *Server) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := s.Backend.ListDrivers(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, drivers)
}

func (s *Server) GetDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "driver_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid driver ID")
		return
	}
	driver, err := s.Backend.GetDriver(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, driver)
}

func (s *Server) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var driver models.Driver
	if err := decodeBody(r, &driver); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateDriver(r.Context(), &driver)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "driver_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid driver ID")
		return
	}
	var driver models.Driver
	if err := decodeBody(r, &driver); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	updated, err := s.Backend.UpdateDriver(r.Context(), id, &driver)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "driver_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid driver ID")
		return
	}
	if err := s.Backend.DeleteDriver(r.Context(), id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "driver deleted"})
}

func (s *Server) UpdateDriverStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "driver_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid driver ID")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil || body.Status == "" {
		respondError(w, http.StatusUnprocessableEntity, "status is required")
		return
	}
	updated, err := s.Backend.UpdateDriverStatus(r.Context(), id, body.Status)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) UpdateDriverLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "driver_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid driver ID")
		return
	}
	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	updated, err := s.Backend.UpdateDriverLocation(r.Context(), id, body.Latitude, body.Longitude)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
