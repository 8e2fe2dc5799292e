package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hotel-room-backend/models"
	"hotel-room-backend/services"
)

func TestGuestCreateTrimsRoomNo(t *testing.T) {
	db := newTestDB(t)
	seedRoomType(t, db, "A01", "Standard", 100)
	seedRoom(t, db, "101", "A01", models.RoomStatusFree)
	svc := services.NewGuestService(db, testLogger())

	roomNo := " 101 "
	guest := models.GuestInfo{
		GuestName: "Li",
		IDCard:    "110101199001011234",
		StayDays:  2,
		RoomNo:    &roomNo,
	}
	require.NoError(t, svc.Create(&guest))
	require.NotZero(t, guest.GuestID)
	require.NotNil(t, guest.RoomNo)
	require.Equal(t, "101", *guest.RoomNo)
	require.False(t, guest.CheckInTime.IsZero())

	var stored models.GuestInfo
	require.NoError(t, db.First(&stored, "guest_id = ?", guest.GuestID).Error)
	require.Equal(t, "101", *stored.RoomNo)
}

func TestGuestCreateEmptyRoomNoBecomesNull(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t), testLogger())

	roomNo := "   "
	guest := models.GuestInfo{GuestName: "Li", IDCard: "123456789012345678", StayDays: 1, RoomNo: &roomNo}
	require.NoError(t, svc.Create(&guest))
	require.Nil(t, guest.RoomNo)
}

func TestGuestCreateUnknownRoomFails(t *testing.T) {
	db := newTestDB(t)
	seedRoomType(t, db, "A01", "Standard", 100)
	svc := services.NewGuestService(db, testLogger())

	roomNo := "999"
	guest := models.GuestInfo{
		GuestName: "Li",
		IDCard:    "110101199001011234",
		StayDays:  2,
		RoomNo:    &roomNo,
	}
	err := svc.Create(&guest)
	require.ErrorIs(t, err, services.ErrForeignKey)

	// No partial row behind a rejected check-in.
	var count int64
	require.NoError(t, db.Model(&models.GuestInfo{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGuestCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewGuestService(db, testLogger())

	err := svc.Create(&models.GuestInfo{GuestName: "", IDCard: "x", StayDays: 1})
	require.ErrorIs(t, err, services.ErrValidation)

	err = svc.Create(&models.GuestInfo{GuestName: "Li", IDCard: "", StayDays: 1})
	require.ErrorIs(t, err, services.ErrValidation)

	err = svc.Create(&models.GuestInfo{GuestName: "Li", IDCard: "x", StayDays: 0})
	require.ErrorIs(t, err, services.ErrValidation)

	var count int64
	require.NoError(t, db.Model(&models.GuestInfo{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGuestListEnrichment(t *testing.T) {
	db := newTestDB(t)
	seedRoomType(t, db, "A01", "Standard", 100)
	seedRoom(t, db, "101", "A01", models.RoomStatusOccupied)
	svc := services.NewGuestService(db, testLogger())

	// Stored room number padded on the guest side: the trimmed join must
	// still resolve the price.
	padded := " 101 "
	resolvable := models.GuestInfo{
		GuestName: "Li", IDCard: "110101199001011234", StayDays: 2,
		RoomNo: &padded, CheckInTime: time.Now(),
	}
	require.NoError(t, db.Create(&resolvable).Error)

	// Room that no longer exists: the guest must still be listed,
	// with price 0.
	gone := "999"
	orphan := models.GuestInfo{
		GuestName: "Wang", IDCard: "220101199001011234", StayDays: 1,
		RoomNo: &gone, CheckInTime: time.Now(),
	}
	require.NoError(t, db.Create(&orphan).Error)

	guests, err := svc.GetAll(0, 100)
	require.NoError(t, err)
	require.Len(t, guests, 2)

	// Newest first.
	require.Equal(t, "Wang", guests[0].GuestName)
	require.Equal(t, 0.0, guests[0].RoomPrice)
	require.Equal(t, "Li", guests[1].GuestName)
	require.Equal(t, 100.0, guests[1].RoomPrice)
}

func TestGuestListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewGuestService(db, testLogger())

	for i := 0; i < 5; i++ {
		g := models.GuestInfo{GuestName: "G", IDCard: "123456789012", StayDays: 1, CheckInTime: time.Now()}
		require.NoError(t, db.Create(&g).Error)
	}

	first, err := svc.GetAll(0, 2)
	require.NoError(t, err)
	second, err := svc.GetAll(2, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Len(t, second, 2)

	// Descending ids with no overlap between pages.
	require.Greater(t, first[0].GuestID, first[1].GuestID)
	require.Greater(t, first[1].GuestID, second[0].GuestID)
	require.Greater(t, second[0].GuestID, second[1].GuestID)
}

func TestGuestCheckout(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewGuestService(db, testLogger())

	guest := models.GuestInfo{GuestName: "Li", IDCard: "110101199001011234", StayDays: 2}
	require.NoError(t, svc.Create(&guest))

	checkoutAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	updated, err := svc.Checkout(guest.GuestID, checkoutAt)
	require.NoError(t, err)
	require.NotNil(t, updated.CheckOutTime)
	require.True(t, updated.CheckOutTime.Equal(checkoutAt))

	var stored models.GuestInfo
	require.NoError(t, db.First(&stored, "guest_id = ?", guest.GuestID).Error)
	require.NotNil(t, stored.CheckOutTime)
	require.True(t, stored.CheckOutTime.Equal(checkoutAt))

	// Second checkout overwrites the timestamp; no guard.
	later := checkoutAt.Add(24 * time.Hour)
	updated, err = svc.Checkout(guest.GuestID, later)
	require.NoError(t, err)
	require.True(t, updated.CheckOutTime.Equal(later))
}

func TestGuestCheckoutNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewGuestService(db, testLogger())

	_, err := svc.Checkout(9999, time.Now())
	require.ErrorIs(t, err, services.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.GuestInfo{}).Count(&count).Error)
	require.Zero(t, count)
}
