package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-room-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_room_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase loads reference data once: room type codes and a starter
// room set, so a fresh install has something to check guests into. The
// store-side routines (proc_search*, proc_statistics*,
// view_expiredStayGuest) are provisioned by the DBA, not migrated here.
func SeedDatabase() {
	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{RoomTypeID: "A01", RoomTypeName: "Standard", RoomPrice: 100.00, RoomDesc: "Standard room"},
			{RoomTypeID: "A02", RoomTypeName: "Superior", RoomPrice: 180.00, RoomDesc: "Superior room"},
			{RoomTypeID: "B01", RoomTypeName: "Deluxe", RoomPrice: 280.00, RoomDesc: "Deluxe room"},
			{RoomTypeID: "B02", RoomTypeName: "Suite", RoomPrice: 480.00, RoomDesc: "Suite"},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")
		}
	}

	var roomCount int64
	DB.Model(&models.RoomInfo{}).Count(&roomCount)
	if roomCount == 0 {
		floor1, floor2 := 1, 2
		beds1, beds2 := 1, 2
		rooms := []models.RoomInfo{
			{RoomNo: "101", RoomTypeID: "A01", RoomStatus: models.RoomStatusFree, RoomFloor: &floor1, RoomBedCount: &beds2},
			{RoomNo: "102", RoomTypeID: "A01", RoomStatus: models.RoomStatusFree, RoomFloor: &floor1, RoomBedCount: &beds2},
			{RoomNo: "201", RoomTypeID: "A02", RoomStatus: models.RoomStatusFree, RoomFloor: &floor2, RoomBedCount: &beds1},
			{RoomNo: "202", RoomTypeID: "B01", RoomStatus: models.RoomStatusFree, RoomFloor: &floor2, RoomBedCount: &beds2},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.HotelSetting{},
		&models.RoomType{},
		&models.RoomInfo{},
		&models.GuestInfo{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
