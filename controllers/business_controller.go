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

// BusinessController dispatches the delegated search/statistics
// endpoints. Parameter parsing happens here; the aggregation is entirely
// store-side.
type BusinessController struct {
	Svc *services.BusinessService
}

func NewBusinessController(svc *services.BusinessService) *BusinessController {
	return &BusinessController{Svc: svc}
}

// SearchFreeRooms handles GET /api/business/search/free-rooms?room_type_name
func (ct *BusinessController) SearchFreeRooms(c *gin.Context) {
	typeName := c.Query("room_type_name")
	if typeName == "" {
		utils.JSONError(c, http.StatusBadRequest, "room_type_name is required")
		return
	}

	rows, err := ct.Svc.SearchFreeRooms(typeName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// SearchGuests handles GET /api/business/search/guests?keyword
func (ct *BusinessController) SearchGuests(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		utils.JSONError(c, http.StatusBadRequest, "keyword is required")
		return
	}

	rows, err := ct.Svc.SearchGuests(keyword)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schemas.NewGuestSearchResponseList(rows))
}

// GetOccupancyRate handles
// GET /api/business/statistics/occupancy-rate?start_date&end_date
func (ct *BusinessController) GetOccupancyRate(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	rows, err := ct.Svc.OccupancyRate(start, end)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetAnnualRevenue handles GET /api/business/statistics/annual-revenue?year
func (ct *BusinessController) GetAnnualRevenue(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		utils.JSONError(c, http.StatusBadRequest, "year must be a positive integer")
		return
	}

	rows, err := ct.Svc.AnnualRevenue(year)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetCostDetail handles GET /api/business/cost-detail/:guestId
func (ct *BusinessController) GetCostDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("guestId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "guest id must be numeric")
		return
	}

	detail, err := ct.Svc.CostDetail(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetExpiredStays handles GET /api/business/guests/expired-stays
func (ct *BusinessController) GetExpiredStays(c *gin.Context) {
	rows, err := ct.Svc.ExpiredStays()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schemas.NewExpiredStayResponseList(rows))
}
