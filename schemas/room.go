package schemas

import "hotel-room-backend/models"

// Request bodies for the room inventory surface. Binding tags reject
// malformed payloads before the service layer runs.

type RoomTypeCreateRequest struct {
	RoomTypeID   string  `json:"roomTypeId" binding:"required"`
	RoomTypeName string  `json:"roomTypeName" binding:"required"`
	RoomPrice    float64 `json:"roomPrice" binding:"min=0"`
	RoomDesc     string  `json:"roomDesc"`
}

func (r RoomTypeCreateRequest) ToModel() models.RoomType {
	return models.RoomType{
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomTypeName,
		RoomPrice:    r.RoomPrice,
		RoomDesc:     r.RoomDesc,
	}
}

type RoomCreateRequest struct {
	RoomNo       string `json:"roomNo" binding:"required"`
	RoomTypeID   string `json:"roomTypeId" binding:"required"`
	RoomStatus   string `json:"roomStatus"`
	RoomFloor    *int   `json:"roomFloor"`
	RoomBedCount *int   `json:"roomBedCount"`
}

// ToModel leaves RoomStatus as given; RoomService.Create owns the
// "free" default.
func (r RoomCreateRequest) ToModel() models.RoomInfo {
	return models.RoomInfo{
		RoomNo:       r.RoomNo,
		RoomTypeID:   r.RoomTypeID,
		RoomStatus:   r.RoomStatus,
		RoomFloor:    r.RoomFloor,
		RoomBedCount: r.RoomBedCount,
	}
}
