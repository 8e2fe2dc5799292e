package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-room-backend/models"
	"hotel-room-backend/services"
)

func TestRoomTypeCreateThenListIncludesItOnce(t *testing.T) {
	svc := services.NewRoomTypeService(newTestDB(t), testLogger())

	rt := models.RoomType{RoomTypeID: "A01", RoomTypeName: "Standard", RoomPrice: 100}
	require.NoError(t, svc.Create(&rt))

	types, err := svc.GetAll()
	require.NoError(t, err)

	seen := 0
	for _, got := range types {
		if got.RoomTypeID == "A01" {
			seen++
			require.Equal(t, "Standard", got.RoomTypeName)
			require.Equal(t, 100.0, got.RoomPrice)
		}
	}
	require.Equal(t, 1, seen)
}

func TestRoomTypeCreateDuplicateID(t *testing.T) {
	svc := services.NewRoomTypeService(newTestDB(t), testLogger())

	first := models.RoomType{RoomTypeID: "A01", RoomTypeName: "Standard", RoomPrice: 100}
	require.NoError(t, svc.Create(&first))

	dup := models.RoomType{RoomTypeID: "A01", RoomTypeName: "Other", RoomPrice: 50}
	err := svc.Create(&dup)
	require.ErrorIs(t, err, services.ErrDuplicateKey)
}

func TestRoomTypeCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRoomTypeService(db, testLogger())

	err := svc.Create(&models.RoomType{RoomTypeID: "A01", RoomTypeName: "", RoomPrice: 100})
	require.ErrorIs(t, err, services.ErrValidation)

	err = svc.Create(&models.RoomType{RoomTypeID: "A01", RoomTypeName: "Standard", RoomPrice: -1})
	require.ErrorIs(t, err, services.ErrValidation)

	err = svc.Create(&models.RoomType{RoomTypeID: "  ", RoomTypeName: "Standard", RoomPrice: 100})
	require.ErrorIs(t, err, services.ErrValidation)

	// Nothing reached the store.
	var count int64
	require.NoError(t, db.Model(&models.RoomType{}).Count(&count).Error)
	require.Zero(t, count)
}
