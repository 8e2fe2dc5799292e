package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-room-backend/models"
	"hotel-room-backend/services"
)

func TestSettingsGetCreatesSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSettingsService(db, testLogger())

	first, err := svc.Get()
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := svc.Get()
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.HotelSetting{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestSettingsUpdate(t *testing.T) {
	svc := services.NewSettingsService(newTestDB(t), testLogger())

	updated, err := svc.Update(&models.HotelSetting{
		Name:         "Lakeside Hotel",
		Phone:        "010-12345678",
		CheckInHour:  "15:00",
		CheckOutHour: "11:00",
	})
	require.NoError(t, err)
	require.Equal(t, "Lakeside Hotel", updated.Name)

	again, err := svc.Get()
	require.NoError(t, err)
	require.Equal(t, "Lakeside Hotel", again.Name)
	require.Equal(t, "15:00", again.CheckInHour)
}
