package models

import "time"

// Table is a physical restaurant table. Active tables are offered for
// booking; inactive ones are hidden from the public listing but keep
// their reservation history.
type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Number    int       `gorm:"not null;uniqueIndex" json:"number"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
