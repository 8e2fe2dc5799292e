package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotel-room-backend/models"
)

type RoomService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewRoomService(db *gorm.DB, log *zap.Logger) *RoomService {
	return &RoomService{DB: db, Log: log}
}

// GetAll returns rooms with their room type, ordered by room number.
// RoomType is preloaded in a second query, so the page can never carry
// join-multiplied rows; equal skip/limit yield the same page absent
// mutation.
func (s *RoomService) GetAll(skip, limit int) ([]models.RoomInfo, error) {
	var rooms []models.RoomInfo
	err := s.DB.
		Preload("RoomType").
		Order("room_no ASC").
		Offset(skip).
		Limit(limit).
		Find(&rooms).Error
	if err != nil {
		s.Log.Error("room list failed", zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

// Create inserts a new room after checking that the referenced room type
// exists. The insert itself is still classified, so an FK rejection from
// the store surfaces the same way as the pre-check.
func (s *RoomService) Create(room *models.RoomInfo) error {
	room.RoomNo = strings.TrimSpace(room.RoomNo)
	if room.RoomNo == "" {
		return fmt.Errorf("%w: roomNo is required", ErrValidation)
	}
	if room.RoomStatus == "" {
		room.RoomStatus = models.RoomStatusFree
	}

	var rt models.RoomType
	if err := s.DB.Where("room_type_id = ?", room.RoomTypeID).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: unknown roomTypeId %q", ErrForeignKey, room.RoomTypeID)
		}
		return err
	}

	if err := s.DB.Omit("RoomType").Create(room).Error; err != nil {
		s.Log.Error("room create failed",
			zap.String("roomNo", room.RoomNo), zap.Error(err))
		return classifyDBError(err)
	}

	s.Log.Info("room created",
		zap.String("roomNo", room.RoomNo),
		zap.String("roomTypeId", room.RoomTypeID))
	return nil
}

// StatusStats counts the full room set and the two canonical statuses as
// three independent queries; total always equals the row count.
func (s *RoomService) StatusStats() (models.RoomStatusStats, error) {
	var stats models.RoomStatusStats

	if err := s.DB.Model(&models.RoomInfo{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.RoomInfo{}).
		Where("room_status = ?", models.RoomStatusFree).
		Count(&stats.Free).Error; err != nil {
		return stats, err
	}
	if err := s.DB.Model(&models.RoomInfo{}).
		Where("room_status = ?", models.RoomStatusOccupied).
		Count(&stats.Occupied).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
