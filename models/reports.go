package models

import "time"

// Result shapes of the store-side routines and summary queries. These are
// scan targets only; nothing here is migrated or written back.

// RoomStatusStats is the realtime room-state summary. Statuses outside
// the canonical pair count toward Total only.
type RoomStatusStats struct {
	Total    int64 `json:"total"`
	Free     int64 `json:"free"`
	Occupied int64 `json:"occupied"`
}

// FreeRoomRow is one row from proc_searchFreeRoomByTypeName.
type FreeRoomRow struct {
	RoomNo       string  `json:"roomNo"`
	RoomTypeName string  `json:"roomTypeName"`
	RoomPrice    float64 `json:"roomPrice"`
	RoomFloor    int     `json:"roomFloor"`
	RoomBedCount int     `json:"roomBedCount"`
}

// GuestSearchRow is one row from proc_searchGuestInfoByKeyword: a guest
// record extended with its room-type name and price.
type GuestSearchRow struct {
	GuestID      uint       `json:"guestId"`
	GuestName    string     `json:"guestName"`
	GuestGender  string     `json:"guestGender"`
	IDCard       string     `json:"idCard"`
	PhoneNum     string     `json:"phoneNum"`
	RoomNo       string     `json:"roomNo"`
	CheckInTime  time.Time  `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	StayDays     int        `json:"stayDays"`
	RoomTypeName string     `json:"roomTypeName"`
	RoomPrice    float64    `json:"roomPrice"`
}

// OccupancyRateRow is one row from proc_statisticsRoomOccupancyRate.
type OccupancyRateRow struct {
	RoomTypeName      string  `json:"roomTypeName"`
	TotalRoomCount    int     `json:"totalRoomCount"`
	OccupiedRoomCount int     `json:"occupiedRoomCount"`
	OccupancyRate     float64 `json:"occupancyRate"`
}

// AnnualRevenueRow is one row from proc_statisticsAnnualRevenue; at most
// twelve rows per year.
type AnnualRevenueRow struct {
	Month          int     `json:"month"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	GuestCount     int     `json:"guestCount"`
}

// GuestCostDetail is the settlement summary from
// proc_searchGuestCostDetail.
type GuestCostDetail struct {
	GuestName      string     `json:"guestName"`
	RoomNo         string     `json:"roomNo"`
	RoomTypeName   string     `json:"roomTypeName"`
	RoomPrice      float64    `json:"roomPrice"`
	CheckInTime    time.Time  `json:"checkInTime"`
	CheckOutTime   *time.Time `json:"checkOutTime"`
	ActualStayDays int        `json:"actualStayDays"`
	DepositMoney   float64    `json:"depositMoney"`
	RoomCost       float64    `json:"roomCost"`
	RefundMoney    float64    `json:"refundMoney"`
}

// ExpiredStayRow is one row from view_expiredStayGuest: a guest whose
// elapsed stay exceeds the declared stay length and who has not checked
// out.
type ExpiredStayRow struct {
	GuestID              uint      `json:"guestId"`
	GuestName            string    `json:"guestName"`
	PhoneNum             string    `json:"phoneNum"`
	RoomNo               string    `json:"roomNo"`
	CheckInTime          time.Time `json:"checkInTime"`
	StayDays             int       `json:"stayDays"`
	ExpectedCheckOutTime time.Time `json:"expectedCheckOutTime"`
	OverdueDays          int       `json:"overdueDays"`
}
