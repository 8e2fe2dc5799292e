package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-room-backend/schemas"
	"hotel-room-backend/services"
	"hotel-room-backend/utils"
)

type RoomTypeController struct {
	Svc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{Svc: svc}
}

// GetRoomTypes handles GET /api/room-types
func (ct *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ct.Svc.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateRoomType handles POST /api/room-types
func (ct *RoomTypeController) CreateRoomType(c *gin.Context) {
	var req schemas.RoomTypeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorDetail(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	rt := req.ToModel()
	if err := ct.Svc.Create(&rt); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rt)
}
