package models

import "time"

type ReservationStatus string

const (
	StatusActive    ReservationStatus = "ACTIVE"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation books one table for one customer at an exact date+time.
// Date is an ISO calendar date (YYYY-MM-DD) and Time a 24-hour HH:MM
// value; slot conflicts are decided on exact equality of both.
type Reservation struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Date       string            `gorm:"type:varchar(10);not null;index" json:"date"`
	Time       string            `gorm:"type:varchar(5);not null" json:"time"`
	PartySize  int               `gorm:"not null" json:"party_size"`
	Status     ReservationStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CustomerID uint              `gorm:"not null" json:"customer_id"`
	TableID    uint              `gorm:"not null" json:"table_id"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Table    *Table    `gorm:"foreignKey:TableID" json:"table,omitempty"`
}
