package models

import "time"

type Payment struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	UserID    int64     `json:"user_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"` // "card", "cash", "transfer"
	Status    string    `json:"status"` // "pending", "paid", "failed", "refunded"
	PaidAt    time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
