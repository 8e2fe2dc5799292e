package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotel-room-backend/models"
)

type SettingsService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewSettingsService(db *gorm.DB, log *zap.Logger) *SettingsService {
	return &SettingsService{DB: db, Log: log}
}

// Get returns the hotel profile, creating the single row on first use.
func (s *SettingsService) Get() (*models.HotelSetting, error) {
	var setting models.HotelSetting
	err := s.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.HotelSetting{Name: "My Hotel"}
		if err := s.DB.Create(&setting).Error; err != nil {
			return nil, classifyDBError(err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Update overwrites the profile fields on the single settings row.
func (s *SettingsService) Update(in *models.HotelSetting) (*models.HotelSetting, error) {
	current, err := s.Get()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":           in.Name,
		"address":        in.Address,
		"phone":          in.Phone,
		"email":          in.Email,
		"website":        in.Website,
		"check_in_hour":  in.CheckInHour,
		"check_out_hour": in.CheckOutHour,
	}
	if err := s.DB.Model(current).Updates(updates).Error; err != nil {
		s.Log.Error("hotel settings update failed", zap.Error(err))
		return nil, classifyDBError(err)
	}

	var out models.HotelSetting
	if err := s.DB.First(&out, current.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
