package models

import "time"

// GuestInfo is one guest's stay record, current or historical. A guest is
// currently staying iff CheckOutTime is nil. RoomNo is nullable: a stay
// may survive the room it referenced (data cleanup), so there is no
// stored back reference to RoomInfo. Room data is resolved by a trimmed
// join at query time.
type GuestInfo struct {
	GuestID      uint       `gorm:"primaryKey;autoIncrement;column:guest_id" json:"guestId"`
	GuestName    string     `gorm:"size:50;not null" json:"guestName"`
	GuestGender  string     `gorm:"size:10;not null;default:male" json:"guestGender"`
	GuestAge     *int       `json:"guestAge"`
	IDCard       string     `gorm:"size:20;not null;column:id_card" json:"idCard"`
	PhoneNum     string     `gorm:"size:20" json:"phoneNum"`
	Address      string     `gorm:"size:200" json:"address"`
	Workplace    string     `gorm:"size:100" json:"workplace"`
	ComeFrom     string     `gorm:"size:50;column:come_from" json:"comeFrom"`
	CheckInTime  time.Time  `gorm:"not null" json:"checkInTime"`
	StayDays     int        `gorm:"not null" json:"stayDays"`
	RoomNo       *string    `gorm:"size:10;column:room_no" json:"roomNo"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	DepositMoney float64    `gorm:"type:decimal(10,2);not null;default:0.00" json:"depositMoney"`
	RoomCost     float64    `gorm:"type:decimal(10,2);not null;default:0.00" json:"roomCost"`
	Remark       string     `gorm:"size:200" json:"remark"`

	// Filled from the joined room type on list queries; never written.
	RoomPrice float64 `gorm:"->;-:migration" json:"roomPrice"`
}
