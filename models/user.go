package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"` // "admin", "staff", "customer", "driver", "dispatcher", "public_service_manager"
	IsActive     bool      `json:"is_active"`
	BusinessName string    `json:"business_name,omitempty"`
	BusinessType string    `json:"business_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
