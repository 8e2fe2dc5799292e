package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-room-backend/models"
	"hotel-room-backend/services"
	"hotel-room-backend/utils"
)

type SettingsController struct {
	Svc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Svc: svc}
}

// GetHotelSettings handles GET /api/settings/hotel
func (ct *SettingsController) GetHotelSettings(c *gin.Context) {
	setting, err := ct.Svc.Get()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

// UpdateHotelSettings handles PUT /api/settings/hotel
func (ct *SettingsController) UpdateHotelSettings(c *gin.Context) {
	var in models.HotelSetting
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONErrorDetail(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	setting, err := ct.Svc.Update(&in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
