package models

import "time"

type MaintenanceRecord struct {
	ID          int64     `json:"id"`
	VehicleID   int64     `json:"vehicle_id"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	PerformedAt time.Time `json:"performed_at"`
	Status      string    `json:"status"` // "scheduled", "in_progress", "done"
	CreatedAt   time.Time `json:"created_at"`
}

type Part struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	UnitCost  float64   `json:"unit_cost"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type CostAnalysis struct {
	VehicleID       int64   `json:"vehicle_id"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	PartsCost       float64 `json:"parts_cost"`
	TotalCost       float64 `json:"total_cost"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
}

type AnalyticsSummary struct {
	TotalBookings     int64   `json:"total_bookings"`
	ActiveDispatches  int64   `json:"active_dispatches"`
	CompletedTrips    int64   `json:"completed_trips"`
	Revenue           float64 `json:"revenue"`
	ActiveDrivers     int64   `json:"active_drivers"`
	VehiclesInService int64   `json:"vehicles_in_service"`
}
