package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-room-backend/schemas"
	"hotel-room-backend/services"
	"hotel-room-backend/utils"
)

type GuestController struct {
	Svc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{Svc: svc}
}

// GetGuests handles GET /api/guests?skip&limit
func (ct *GuestController) GetGuests(c *gin.Context) {
	skip, limit := parseSkipLimit(c)
	guests, err := ct.Svc.GetAll(skip, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schemas.NewGuestResponseList(guests))
}

// CreateGuest handles POST /api/guests (check-in)
func (ct *GuestController) CreateGuest(c *gin.Context) {
	var req schemas.GuestCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorDetail(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	guest := req.ToModel()
	if err := ct.Svc.Create(&guest); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schemas.NewGuestResponse(guest))
}

// CheckoutGuest handles POST /api/guests/:id/checkout. The check-out
// time is stamped server-side.
func (ct *GuestController) CheckoutGuest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "guest id must be numeric")
		return
	}

	guest, err := ct.Svc.Checkout(uint(id), time.Now())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schemas.NewGuestResponse(*guest))
}
