package model

import "time"

// Reservation represents one booking of a piece of equipment, identified by its
// rental code. Multiple reservations may share a code (sequential bookings).
type Reservation struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Client    string    `gorm:"size:128;not null" json:"client"`
	Equipment string    `gorm:"size:256" json:"equipment"`
	Code      string    `gorm:"index;size:32" json:"code"`
	StartDate time.Time `gorm:"not null;index" json:"startDate"`
	EndDate   time.Time `gorm:"not null;index" json:"endDate"`
	Price     float64   `json:"price"`
	Paid      float64   `json:"paid"`
	Notes     string    `gorm:"size:256" json:"notes"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
