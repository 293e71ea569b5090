package models

import "time"

type Dispatch struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	DriverID  int64     `json:"driver_id,omitempty"`
	TruckID   int64     `json:"truck_id,omitempty"`
	Status    string    `json:"status"` // "open", "assigned", "en_route", "completed", "cancelled"
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
