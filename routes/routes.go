package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-room-backend/controllers"
	"hotel-room-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances into the route table.
func SetupRouter(
	rtc *controllers.RoomTypeController,
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	bc *controllers.BusinessController,
	sc *controllers.SettingsController,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.POST("", rtc.CreateRoomType)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.GET("/stats/summary", rc.GetRoomStats)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.CreateGuest)
			guests.POST("/:id/checkout", gc.CheckoutGuest)
		}

		business := api.Group("/business")
		{
			business.GET("/search/free-rooms", bc.SearchFreeRooms)
			business.GET("/search/guests", bc.SearchGuests)
			business.GET("/statistics/occupancy-rate", bc.GetOccupancyRate)
			business.GET("/statistics/annual-revenue", bc.GetAnnualRevenue)
			business.GET("/cost-detail/:guestId", bc.GetCostDetail)
			business.GET("/guests/expired-stays", bc.GetExpiredStays)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", sc.GetHotelSettings)
			settings.PUT("/hotel", sc.UpdateHotelSettings)
		}
	}

	return r
}
