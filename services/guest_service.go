package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotel-room-backend/models"
)

type GuestService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewGuestService(db *gorm.DB, log *zap.Logger) *GuestService {
	return &GuestService{DB: db, Log: log}
}

// GetAll returns stay records newest-first, each carrying the price of
// its room's type. Both joins are LEFT JOINs on trimmed room numbers:
// legacy CHAR columns pad with spaces, and a guest whose room no longer
// resolves must still be returned (price 0).
func (s *GuestService) GetAll(skip, limit int) ([]models.GuestInfo, error) {
	var guests []models.GuestInfo
	err := s.DB.Model(&models.GuestInfo{}).
		Select("guest_infos.*, COALESCE(room_types.room_price, 0) AS room_price").
		Joins("LEFT JOIN room_infos ON TRIM(guest_infos.room_no) = TRIM(room_infos.room_no)").
		Joins("LEFT JOIN room_types ON room_infos.room_type_id = room_types.room_type_id").
		Order("guest_infos.guest_id DESC").
		Offset(skip).
		Limit(limit).
		Find(&guests).Error
	if err != nil {
		s.Log.Error("guest list failed", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.GuestInfo, error) {
	var guest models.GuestInfo
	if err := s.DB.First(&guest, "guest_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &guest, nil
}

// Create registers a check-in. The room number is trimmed before it is
// stored so later joins resolve; an empty result becomes NULL, never "".
// A named room must exist at check-in time; stays only lose their room
// later (data cleanup). The insert is a single row, so a failure leaves
// nothing behind.
func (s *GuestService) Create(guest *models.GuestInfo) error {
	if strings.TrimSpace(guest.GuestName) == "" {
		return fmt.Errorf("%w: guestName is required", ErrValidation)
	}
	if strings.TrimSpace(guest.IDCard) == "" {
		return fmt.Errorf("%w: idCard is required", ErrValidation)
	}
	if guest.StayDays < 1 {
		return fmt.Errorf("%w: stayDays must be at least 1", ErrValidation)
	}

	if guest.RoomNo != nil {
		trimmed := strings.TrimSpace(*guest.RoomNo)
		if trimmed == "" {
			guest.RoomNo = nil
		} else {
			guest.RoomNo = &trimmed
		}
	}
	if guest.RoomNo != nil {
		var room models.RoomInfo
		if err := s.DB.Where("room_no = ?", *guest.RoomNo).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: unknown roomNo %q", ErrForeignKey, *guest.RoomNo)
			}
			return err
		}
	}
	if guest.CheckInTime.IsZero() {
		guest.CheckInTime = time.Now()
	}

	if err := s.DB.Create(guest).Error; err != nil {
		s.Log.Error("guest create failed",
			zap.String("guestName", guest.GuestName), zap.Error(err))
		return classifyDBError(err)
	}

	s.Log.Info("guest checked in",
		zap.Uint("guestId", guest.GuestID),
		zap.Stringp("roomNo", guest.RoomNo))
	return nil
}

// Checkout stamps the check-out time on an existing stay. A second
// checkout simply overwrites the previous timestamp; nothing guards
// against it, and room status is left to the store-side routines.
func (s *GuestService) Checkout(id uint, checkoutTime time.Time) (*models.GuestInfo, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	guest.CheckOutTime = &checkoutTime
	if err := s.DB.Model(&models.GuestInfo{}).
		Where("guest_id = ?", id).
		Update("check_out_time", checkoutTime).Error; err != nil {
		s.Log.Error("guest checkout failed", zap.Uint("guestId", id), zap.Error(err))
		return nil, classifyDBError(err)
	}

	s.Log.Info("guest checked out",
		zap.Uint("guestId", id),
		zap.Time("checkOutTime", checkoutTime))
	return guest, nil
}
