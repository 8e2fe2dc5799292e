package models

import "time"

// HotelSetting is the single-row hotel profile shown on receipts and the
// front-desk UI.
type HotelSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Address      string    `gorm:"type:text" json:"address"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Email        string    `gorm:"size:150" json:"email"`
	Website      string    `gorm:"size:255" json:"website"`
	CheckInHour  string    `gorm:"size:5;default:14:00" json:"checkInHour"`
	CheckOutHour string    `gorm:"size:5;default:12:00" json:"checkOutHour"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
