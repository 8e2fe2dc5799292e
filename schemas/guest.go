package schemas

import (
	"time"

	"hotel-room-backend/models"
)

type GuestCreateRequest struct {
	GuestName    string  `json:"guestName" binding:"required"`
	GuestGender  string  `json:"guestGender"`
	GuestAge     *int    `json:"guestAge"`
	IDCard       string  `json:"idCard" binding:"required"`
	PhoneNum     string  `json:"phoneNum"`
	Address      string  `json:"address"`
	Workplace    string  `json:"workplace"`
	ComeFrom     string  `json:"comeFrom"`
	StayDays     int     `json:"stayDays" binding:"required,min=1"`
	RoomNo       *string `json:"roomNo"`
	DepositMoney float64 `json:"depositMoney" binding:"min=0"`
	Remark       string  `json:"remark"`
}

func (r GuestCreateRequest) ToModel() models.GuestInfo {
	return models.GuestInfo{
		GuestName:    r.GuestName,
		GuestGender:  r.GuestGender,
		GuestAge:     r.GuestAge,
		IDCard:       r.IDCard,
		PhoneNum:     r.PhoneNum,
		Address:      r.Address,
		Workplace:    r.Workplace,
		ComeFrom:     r.ComeFrom,
		StayDays:     r.StayDays,
		RoomNo:       r.RoomNo,
		DepositMoney: r.DepositMoney,
		Remark:       r.Remark,
	}
}

// GuestResponse mirrors a stay record with the sensitive fields masked.
// Every guest record that leaves the API goes through this shape.
type GuestResponse struct {
	GuestID      uint       `json:"guestId"`
	GuestName    string     `json:"guestName"`
	GuestGender  string     `json:"guestGender"`
	GuestAge     *int       `json:"guestAge"`
	IDCard       string     `json:"idCard"`
	PhoneNum     string     `json:"phoneNum"`
	Address      string     `json:"address"`
	Workplace    string     `json:"workplace"`
	ComeFrom     string     `json:"comeFrom"`
	CheckInTime  time.Time  `json:"checkInTime"`
	StayDays     int        `json:"stayDays"`
	RoomNo       string     `json:"roomNo"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	DepositMoney float64    `json:"depositMoney"`
	RoomCost     float64    `json:"roomCost"`
	Remark       string     `json:"remark"`
	RoomPrice    float64    `json:"roomPrice"`
}

func NewGuestResponse(g models.GuestInfo) GuestResponse {
	roomNo := ""
	if g.RoomNo != nil {
		roomNo = *g.RoomNo
	}
	return GuestResponse{
		GuestID:      g.GuestID,
		GuestName:    g.GuestName,
		GuestGender:  g.GuestGender,
		GuestAge:     g.GuestAge,
		IDCard:       MaskIDCard(g.IDCard),
		PhoneNum:     MaskPhone(g.PhoneNum),
		Address:      g.Address,
		Workplace:    g.Workplace,
		ComeFrom:     g.ComeFrom,
		CheckInTime:  g.CheckInTime,
		StayDays:     g.StayDays,
		RoomNo:       roomNo,
		CheckOutTime: g.CheckOutTime,
		DepositMoney: g.DepositMoney,
		RoomCost:     g.RoomCost,
		Remark:       g.Remark,
		RoomPrice:    g.RoomPrice,
	}
}

func NewGuestResponseList(guests []models.GuestInfo) []GuestResponse {
	out := make([]GuestResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, NewGuestResponse(g))
	}
	return out
}

// GuestSearchResponse is a keyword-search row with the same masking as
// GuestResponse plus the resolved room-type name.
type GuestSearchResponse struct {
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

func NewGuestSearchResponseList(rows []models.GuestSearchRow) []GuestSearchResponse {
	out := make([]GuestSearchResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, GuestSearchResponse{
			GuestID:      r.GuestID,
			GuestName:    r.GuestName,
			GuestGender:  r.GuestGender,
			IDCard:       MaskIDCard(r.IDCard),
			PhoneNum:     MaskPhone(r.PhoneNum),
			RoomNo:       r.RoomNo,
			CheckInTime:  r.CheckInTime,
			CheckOutTime: r.CheckOutTime,
			StayDays:     r.StayDays,
			RoomTypeName: r.RoomTypeName,
			RoomPrice:    r.RoomPrice,
		})
	}
	return out
}

// ExpiredStayResponse masks the contact number on overdue-guest rows.
type ExpiredStayResponse struct {
	GuestID              uint      `json:"guestId"`
	GuestName            string    `json:"guestName"`
	PhoneNum             string    `json:"phoneNum"`
	RoomNo               string    `json:"roomNo"`
	CheckInTime          time.Time `json:"checkInTime"`
	StayDays             int       `json:"stayDays"`
	ExpectedCheckOutTime time.Time `json:"expectedCheckOutTime"`
	OverdueDays          int       `json:"overdueDays"`
}

func NewExpiredStayResponseList(rows []models.ExpiredStayRow) []ExpiredStayResponse {
	out := make([]ExpiredStayResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExpiredStayResponse{
			GuestID:              r.GuestID,
			GuestName:            r.GuestName,
			PhoneNum:             MaskPhone(r.PhoneNum),
			RoomNo:               r.RoomNo,
			CheckInTime:          r.CheckInTime,
			StayDays:             r.StayDays,
			ExpectedCheckOutTime: r.ExpectedCheckOutTime,
			OverdueDays:          r.OverdueDays,
		})
	}
	return out
}
