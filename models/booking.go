package models

import "time"

type Booking struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	PickupLat       float64   `json:"pickup_latitude"`
	PickupLng       float64   `json:"pickup_longitude"`
	DeliveryLat     float64   `json:"delivery_latitude"`
	DeliveryLng     float64   `json:"delivery_longitude"`
	CargoWeightKg   float64   `json:"cargo_weight_kg"`
	Status          string    `json:"status"` // "pending", "confirmed", "in_transit", "delivered", "cancelled"
	ScheduledAt     time.Time `json:"scheduled_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
