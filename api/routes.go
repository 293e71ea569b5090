package api

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"transport-admin/middleware"
)

// RegisterRoutes builds the full route tree: open auth and tracking
// routes, plus resource routes guarded by the role table.
func RegisterRoutes(s *Server, authMW *middleware.AuthMiddleware) http.Handler {
	router := mux.NewRouter()

	// Session endpoints
	router.HandleFunc("/auth/login", s.Login).Methods("POST")
	router.HandleFunc("/auth/logout", s.Logout).Methods("POST")
	router.HandleFunc("/auth/session", s.SessionInfo).Methods("GET")

	// Password reset is reachable logged out
	router.HandleFunc("/password-reset/request", s.RequestPasswordReset).Methods("POST")
	router.HandleFunc("/password-reset/confirm", s.ConfirmPasswordReset).Methods("POST")

	// Local tracking subsystem
	router.HandleFunc("/api/tracking/eta", s.CalculateETA).Methods("POST")
	router.HandleFunc("/api/tracking/dashboard", s.TrackingDashboard).Methods("GET")
	router.HandleFunc("/api/tracking/locations", s.RecordLocation).Methods("POST")
	router.HandleFunc("/api/tracking/nearby", s.NearbyVehicles).Methods("GET")
	router.HandleFunc("/api/tracking/live", s.LiveFeed).Methods("GET")
	router.HandleFunc("/api/tracking/geofences", s.ListGeofences).Methods("GET")
	router.HandleFunc("/api/tracking/geofences", s.CreateGeofence).Methods("POST")
	router.HandleFunc("/api/tracking/geofences/{geofence_id}", s.UpdateGeofence).Methods("PUT")
	router.HandleFunc("/api/tracking/geofences/{geofence_id}", s.DeleteGeofence).Methods("DELETE")

	// Resource routes, role-guarded
	guarded := router.PathPrefix("/").Subrouter()
	guarded.Use(middleware.RouteGuard)

	guarded.HandleFunc("/users", s.ListUsers).Methods("GET")
	guarded.HandleFunc("/users", s.CreateUser).Methods("POST")
	guarded.HandleFunc("/users/{user_id}", s.GetUser).Methods("GET")
	guarded.HandleFunc("/users/{user_id}", s.UpdateUser).Methods("PUT")
	guarded.HandleFunc("/users/{user_id}", s.DeleteUser).Methods("DELETE")
	guarded.HandleFunc("/users/{user_id}/role", s.UpdateUserRole).Methods("PATCH")

	guarded.HandleFunc("/bookings", s.ListBookings).Methods("GET")
	guarded.HandleFunc("/bookings", s.CreateBooking).Methods("POST")
	guarded.HandleFunc("/bookings/{booking_id}", s.GetBooking).Methods("GET")
	guarded.HandleFunc("/bookings/{booking_id}", s.UpdateBooking).Methods("PUT")
	guarded.HandleFunc("/bookings/{booking_id}", s.DeleteBooking).Methods("DELETE")
	guarded.HandleFunc("/bookings/{booking_id}/status", s.UpdateBookingStatus).Methods("PATCH")

	guarded.HandleFunc("/payments", s.ListPayments).Methods("GET")
	guarded.HandleFunc("/payments", s.CreatePayment).Methods("POST")
	guarded.HandleFunc("/payments/{payment_id}", s.GetPayment).Methods("GET")
	guarded.HandleFunc("/payments/{payment_id}/status", s.UpdatePaymentStatus).Methods("PATCH")

	guarded.HandleFunc("/dispatches", s.ListDispatches).Methods("GET")
	guarded.HandleFunc("/dispatches", s.CreateDispatch).Methods("POST")
	guarded.HandleFunc("/dispatches/{dispatch_id}", s.GetDispatch).Methods("GET")
	guarded.HandleFunc("/dispatches/{dispatch_id}/assign", s.AssignDispatch).Methods("PATCH")
	guarded.HandleFunc("/dispatches/{dispatch_id}/status", s.UpdateDispatchStatus).Methods("PATCH")

	guarded.HandleFunc("/trips", s.ListTrips).Methods("GET")
	guarded.HandleFunc("/trips", s.CreateTrip).Methods("POST")
	guarded.HandleFunc("/trips/{trip_id}", s.GetTrip).Methods("GET")
	guarded.HandleFunc("/trips/{trip_id}/status", s.UpdateTripStatus).Methods("PATCH")
	guarded.HandleFunc("/trips/{trip_id}/complete", s.CompleteTrip).Methods("PUT")

	guarded.HandleFunc("/vehicles", s.ListVehicles).Methods("GET")
	guarded.HandleFunc("/vehicles", s.CreateVehicle).Methods("POST")
	guarded.HandleFunc("/vehicles/{vehicle_id}", s.GetVehicle).Methods("GET")
	guarded.HandleFunc("/vehicles/{vehicle_id}", s.UpdateVehicle).Methods("PUT")
	guarded.HandleFunc("/vehicles/{vehicle_id}", s.DeleteVehicle).Methods("DELETE")

	guarded.HandleFunc("/trucks", s.ListTrucks).Methods("GET")
	guarded.HandleFunc("/trucks", s.CreateTruck).Methods("POST")
	guarded.HandleFunc("/trucks/{truck_id}", s.GetTruck).Methods("GET")
	guarded.HandleFunc("/trucks/{truck_id}", s.UpdateTruck).Methods("PUT")
	guarded.HandleFunc("/trucks/{truck_id}", s.DeleteTruck).Methods("DELETE")

	guarded.HandleFunc("/fleets", s.ListFleets).Methods("GET")
	guarded.HandleFunc("/fleets", s.CreateFleet).Methods("POST")
	guarded.HandleFunc("/fleets/{fleet_id}", s.GetFleet).Methods("GET")
	guarded.HandleFunc("/fleets/{fleet_id}", s.UpdateFleet).Methods("PUT")
	guarded.HandleFunc("/fleets/{fleet_id}", s.DeleteFleet).Methods("DELETE")

	guarded.HandleFunc("/drivers", s.ListDrivers).Methods("GET")
	guarded.HandleFunc("/drivers", s.CreateDriver).Methods("POST")
	guarded.HandleFunc("/drivers/{driver_id}", s.GetDriver).Methods("GET")
	guarded.HandleFunc("/drivers/{driver_id}", s.UpdateDriver).Methods("PUT")
	guarded.HandleFunc("/drivers/{driver_id}", s.DeleteDriver).Methods("DELETE")
	guarded.HandleFunc("/drivers/{driver_id}/status", s.UpdateDriverStatus).Methods("PATCH")
	guarded.HandleFunc("/drivers/{driver_id}/location", s.UpdateDriverLocation).Methods("PATCH")

	guarded.HandleFunc("/notifications", s.ListNotifications).Methods("GET")
	guarded.HandleFunc("/notifications", s.SendNotification).Methods("POST")
	guarded.HandleFunc("/notifications/{notification_id}/read", s.MarkNotificationRead).Methods("PATCH")

	guarded.HandleFunc("/services/maintenance", s.ListMaintenanceRecords).Methods("GET")
	guarded.HandleFunc("/services/maintenance", s.CreateMaintenanceRecord).Methods("POST")
	guarded.HandleFunc("/services/parts", s.ListParts).Methods("GET")
	guarded.HandleFunc("/services/parts", s.CreatePart).Methods("POST")
	guarded.HandleFunc("/services/cost-analysis", s.CostAnalysis).Methods("GET")

	guarded.HandleFunc("/analytics/summary", s.AnalyticsSummary).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return handlers.CombinedLoggingHandler(os.Stdout, cors(authMW.Wrap(router)))
}
