package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-room-backend/models"
)

// newTestDB opens a private in-memory SQLite database and migrates the
// schema. Each test gets its own named database so tests stay isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.HotelSetting{},
		&models.RoomType{},
		&models.RoomInfo{},
		&models.GuestInfo{},
	))
	return db
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func seedRoomType(t *testing.T, db *gorm.DB, id, name string, price float64) {
	t.Helper()
	rt := models.RoomType{RoomTypeID: id, RoomTypeName: name, RoomPrice: price}
	require.NoError(t, db.Create(&rt).Error)
}

func seedRoom(t *testing.T, db *gorm.DB, roomNo, typeID, status string) {
	t.Helper()
	room := models.RoomInfo{RoomNo: roomNo, RoomTypeID: typeID, RoomStatus: status}
	require.NoError(t, db.Omit("RoomType").Create(&room).Error)
}
