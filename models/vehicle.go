package models

import "time"

type Vehicle struct {
	ID           int64     `json:"id"`
	FleetID      int64     `json:"fleet_id,omitempty"`
	PlateNumber  string    `json:"plate_number"`
	Model        string    `json:"model"`
	Type         string    `json:"type"` // "bus", "van", "car", "truck"
	CapacityKg   float64   `json:"capacity_kg,omitempty"`
	Seats        int       `json:"seats,omitempty"`
	Status       string    `json:"status"` // "active", "maintenance", "retired"
	OdometerKm   float64   `json:"odometer_km"`
	LastServiced time.Time `json:"last_serviced,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Truck struct {
	ID          int64     `json:"id"`
	FleetID     int64     `json:"fleet_id,omitempty"`
	PlateNumber string    `json:"plate_number"`
	Model       string    `json:"model"`
	CapacityKg  float64   `json:"capacity_kg"`
	Status      string    `json:"status"` // "available", "on_dispatch", "maintenance"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
