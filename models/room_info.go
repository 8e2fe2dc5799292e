package models

// Canonical room statuses. The column stays an open string: other values
// (e.g. "maintenance") are stored verbatim and only count toward the
// total in status summaries.
const (
	RoomStatusFree     = "free"
	RoomStatusOccupied = "occupied"
)

// RoomInfo is one physical room and its current status.
type RoomInfo struct {
	RoomNo       string `gorm:"primaryKey;size:5;column:room_no" json:"roomNo"`
	RoomTypeID   string `gorm:"size:3;not null;column:room_type_id" json:"roomTypeId"`
	RoomStatus   string `gorm:"size:8;not null;default:free" json:"roomStatus"`
	RoomFloor    *int   `json:"roomFloor"`
	RoomBedCount *int   `json:"roomBedCount"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:RoomTypeID" json:"roomType"`
}
