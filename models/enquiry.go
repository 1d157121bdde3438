package models

import "time"

// Enquiry is a lead captured from the website: someone interested in a
// farm plot, a product or a farm visit.
type Enquiry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Interest  string    `json:"interest"` // e.g. "farm plot", "products", "farm visit"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
