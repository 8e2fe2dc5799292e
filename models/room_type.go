package models

import "time"

// RoomType is a price/category class of room. The ID is a short
// administrative code (e.g. "A01") assigned at creation time; rows are
// never deleted once rooms reference them.
type RoomType struct {
	RoomTypeID   string  `gorm:"primaryKey;size:3;column:room_type_id" json:"roomTypeId"`
	RoomTypeName string  `gorm:"size:20;not null" json:"roomTypeName"`
	RoomPrice    float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"roomPrice"`
	RoomDesc     string  `gorm:"size:200" json:"roomDesc"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
