package api

import (
	"net/http"

	"transport-admin/events"
	"transport-admin/models"
)

func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.Backend.ListBookings(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "booking_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking ID")
		return
	}
	booking, err := s.Backend.GetBooking(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := decodeBody(r, &booking); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateBooking(r.Context(), &booking)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "booking_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking ID")
		return
	}
	var booking models.Booking
	if err := decodeBody(r, &booking); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	updated, err := s.Backend.UpdateBooking(r.Context(), id, &booking)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "booking_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking ID")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil || body.Status == "" {
		respondError(w, http.StatusUnprocessableEntity, "status is required")
		return
	}
	updated, err := s.Backend.UpdateBookingStatus(r.Context(), id, body.Status)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "booking_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking ID")
		return
	}
	if err := s.Backend.DeleteBooking(r.Context(), id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "booking deleted"})
}

func (s *Server) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.Backend.ListPayments(r.Context(), queryID(r, "booking_id"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

func (s *Server) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := decodeBody(r, &payment); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreatePayment(r.Context(), &payment)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "payment_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid payment ID")
		return
	}
	payment, err := s.Backend.GetPayment(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (s *Server) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "payment_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid payment ID")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil || body.Status == "" {
		respondError(w, http.StatusUnprocessableEntity, "status is required")
		return
	}
	updated, err := s.Backend.UpdatePaymentStatus(r.Context(), id, body.Status)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) ListDispatches(w http.ResponseWriter, r *http.Request) {
	dispatches, err := s.Backend.ListDispatches(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dispatches)
}

func (s *Server) GetDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "dispatch_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid dispatch ID")
		return
	}
	dispatch, err := s.Backend.GetDispatch(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dispatch)
}

// CreateDispatch forwards the dispatch and announces it on the bus.
func (s *Server) CreateDispatch(w http.ResponseWriter, r *http.Request) {
	var dispatch models.Dispatch
	if err := decodeBody(r, &dispatch); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateDispatch(r.Context(), &dispatch)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	s.publish(r, events.TypeDispatchCreated, created)
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) AssignDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "dispatch_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid dispatch ID")
		return
	}
	var body struct {
		DriverID int64 `json:"driver_id"`
		TruckID  int64 `json:"truck_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	updated, err := s.Backend.AssignDispatch(r.Context(), id, body.DriverID, body.TruckID)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	s.publish(r, events.TypeDispatchAssigned, updated)
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) UpdateDispatchStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "dispatch_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid dispatch ID")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil || body.Status == "" {
		respondError(w, http.StatusUnprocessableEntity, "status is required")
		return
	}
	updated, err := s.Backend.UpdateDispatchStatus(r.Context(), id, body.Status)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.Backend.ListTrips(r.Context(), queryID(r, "driver_id"))
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trips)
}

func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "trip_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trip ID")
		return
	}
	trip, err := s.Backend.GetTrip(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var trip models.Trip
	if err := decodeBody(r, &trip); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}
	created, err := s.Backend.CreateTrip(r.Context(), &trip)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateTripStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "trip_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trip ID")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil || body.Status == "" {
		respondError(w, http.StatusUnprocessableEntity, "status is required")
		return
	}
	updated, err := s.Backend.UpdateTripStatus(r.Context(), id, body.Status)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "trip_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trip ID")
		return
	}
	completed, err := s.Backend.CompleteTrip(r.Context(), id)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, completed)
}
