package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-room-backend/config"
	"hotel-room-backend/controllers"
	"hotel-room-backend/routes"
	"hotel-room-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	db := config.DB
	logger.Info("database connection established, migrations applied")

	// Services
	roomTypeService := services.NewRoomTypeService(db, logger)
	roomService := services.NewRoomService(db, logger)
	guestService := services.NewGuestService(db, logger)
	businessService := services.NewBusinessService(db, logger)
	settingsService := services.NewSettingsService(db, logger)

	// Controllers
	roomTypeController := controllers.NewRoomTypeController(roomTypeService)
	roomController := controllers.NewRoomController(roomService)
	guestController := controllers.NewGuestController(guestService)
	businessController := controllers.NewBusinessController(businessService)
	settingsController := controllers.NewSettingsController(settingsService)

	router := routes.SetupRouter(
		roomTypeController,
		roomController,
		guestController,
		businessController,
		settingsController,
		logger,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
