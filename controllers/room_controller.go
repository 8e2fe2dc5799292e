package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-room-backend/schemas"
	"hotel-room-backend/services"
	"hotel-room-backend/utils"
)

type RoomController struct {
	Svc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Svc: svc}
}

// parseSkipLimit reads offset pagination params, defaulting to the first
// hundred rows.
func parseSkipLimit(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	return skip, limit
}

// GetRooms handles GET /api/rooms?skip&limit
func (ct *RoomController) GetRooms(c *gin.Context) {
	skip, limit := parseSkipLimit(c)
	rooms, err := ct.Svc.GetAll(skip, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms
func (ct *RoomController) CreateRoom(c *gin.Context) {
	var req schemas.RoomCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorDetail(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	room := req.ToModel()
	if err := ct.Svc.Create(&room); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRoomStats handles GET /api/rooms/stats/summary
func (ct *RoomController) GetRoomStats(c *gin.Context) {
	stats, err := ct.Svc.StatusStats()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
