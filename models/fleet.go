package models

import "time"

type Fleet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ManagerID int64     `json:"manager_id,omitempty"`
	Region    string    `json:"region,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
