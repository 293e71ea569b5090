package models

import "time"

type LocationPing struct {
	ID        string    `json:"id" db:"id"`
	TruckID   int64     `json:"truck_id" db:"truck_id"`
	DriverID  int64     `json:"driver_id,omitempty" db:"driver_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	SpeedKmh  float64   `json:"speed_kmh" db:"speed_kmh"`
	Geohash   string    `json:"geohash" db:"geohash"`
	PingedAt  time.Time `json:"pinged_at" db:"pinged_at"`
}

type Geofence struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CenterLat float64   `json:"center_latitude" db:"center_lat"`
	CenterLng float64   `json:"center_longitude" db:"center_lng"`
	RadiusKm  float64   `json:"radius_km" db:"radius_km"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type GeofenceAlert struct {
	ID         string    `json:"id" db:"id"`
	GeofenceID int64     `json:"geofence_id" db:"geofence_id"`
	TruckID    int64     `json:"truck_id" db:"truck_id"`
	AlertType  string    `json:"alert_type" db:"alert_type"` // "entry", "exit"
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
}

type DashboardData struct {
	TotalTrucks     int             `json:"total_trucks"`
	ActiveTrucks    int             `json:"active_trucks"`
	IdleTrucks      int             `json:"idle_trucks"`
	RecentLocations []LocationPing  `json:"recent_locations"`
	GeofenceAlerts  []GeofenceAlert `json:"geofence_alerts"`
	GeneratedAt     time.Time       `json:"generated_at"`
}
