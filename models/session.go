package models

import "time"

// Session identifies one browser session. Carts are keyed on it.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
