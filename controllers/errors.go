package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-room-backend/services"
	"hotel-room-backend/utils"
)

// handleServiceError translates the service error taxonomy into an HTTP
// status. Anything unclassified is a store failure and comes back as 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicateKey):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrForeignKey):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "database error")
	}
}
