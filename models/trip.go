package models

import "time"

type Trip struct {
	ID         int64     `json:"id"`
	DispatchID int64     `json:"dispatch_id"`
	DriverID   int64     `json:"driver_id"`
	VehicleID  int64     `json:"vehicle_id"`
	StartLat   float64   `json:"start_latitude"`
	StartLng   float64   `json:"start_longitude"`
	EndLat     float64   `json:"end_latitude"`
	EndLng     float64   `json:"end_longitude"`
	DistanceKm float64   `json:"distance_km"`
	Status     string    `json:"status"` // "scheduled", "started", "completed", "cancelled"
	StartedAt  time.Time `json:"started_at,omitempty"`
	EndedAt    time.Time `json:"ended_at,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
