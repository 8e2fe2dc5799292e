package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotel-room-backend/models"
)

type RoomTypeService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewRoomTypeService(db *gorm.DB, log *zap.Logger) *RoomTypeService {
	return &RoomTypeService{DB: db, Log: log}
}

// GetAll returns every room type, unfiltered.
func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Find(&types).Error; err != nil {
		s.Log.Error("room type list failed", zap.Error(err))
		return nil, err
	}
	return types, nil
}

// Create validates and inserts a new room type. Validation rejects the
// row before any store interaction.
func (s *RoomTypeService) Create(rt *models.RoomType) error {
	rt.RoomTypeID = strings.TrimSpace(rt.RoomTypeID)
	if rt.RoomTypeID == "" {
		return fmt.Errorf("%w: roomTypeId is required", ErrValidation)
	}
	if strings.TrimSpace(rt.RoomTypeName) == "" {
		return fmt.Errorf("%w: roomTypeName is required", ErrValidation)
	}
	if rt.RoomPrice < 0 {
		return fmt.Errorf("%w: roomPrice must not be negative", ErrValidation)
	}

	if err := s.DB.Create(rt).Error; err != nil {
		s.Log.Error("room type create failed",
			zap.String("roomTypeId", rt.RoomTypeID), zap.Error(err))
		return classifyDBError(err)
	}

	s.Log.Info("room type created",
		zap.String("roomTypeId", rt.RoomTypeID),
		zap.String("roomTypeName", rt.RoomTypeName))
	return nil
}
