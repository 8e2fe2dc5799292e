package services

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotel-room-backend/models"
)

// BusinessService owns the call contracts for the store-side routines:
// fixed parameter lists in, documented row shapes out. The aggregation
// logic itself lives in the database and is not reimplemented here.
type BusinessService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewBusinessService(db *gorm.DB, log *zap.Logger) *BusinessService {
	return &BusinessService{DB: db, Log: log}
}

// SearchFreeRooms lists currently-free rooms of the named type.
func (s *BusinessService) SearchFreeRooms(roomTypeName string) ([]models.FreeRoomRow, error) {
	var rows []models.FreeRoomRow
	err := s.DB.Raw("CALL proc_searchFreeRoomByTypeName(?)", roomTypeName).Scan(&rows).Error
	if err != nil {
		s.Log.Error("free room search failed",
			zap.String("roomTypeName", roomTypeName), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// SearchGuests fuzzy-matches guests by name, room number or ID document.
func (s *BusinessService) SearchGuests(keyword string) ([]models.GuestSearchRow, error) {
	var rows []models.GuestSearchRow
	err := s.DB.Raw("CALL proc_searchGuestInfoByKeyword(?)", keyword).Scan(&rows).Error
	if err != nil {
		s.Log.Error("guest search failed", zap.String("keyword", keyword), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// OccupancyRate reports per-type occupancy over a date range.
func (s *BusinessService) OccupancyRate(startDate, endDate time.Time) ([]models.OccupancyRateRow, error) {
	var rows []models.OccupancyRateRow
	err := s.DB.Raw("CALL proc_statisticsRoomOccupancyRate(?, ?)", startDate, endDate).
		Scan(&rows).Error
	if err != nil {
		s.Log.Error("occupancy rate query failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// AnnualRevenue reports monthly revenue and guest counts for one year.
func (s *BusinessService) AnnualRevenue(year int) ([]models.AnnualRevenueRow, error) {
	var rows []models.AnnualRevenueRow
	err := s.DB.Raw("CALL proc_statisticsAnnualRevenue(?)", year).Scan(&rows).Error
	if err != nil {
		s.Log.Error("annual revenue query failed", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// CostDetail returns the settlement summary for one guest, or
// ErrNotFound when the routine yields no row. An empty result is not a
// store error here; absence only becomes an error at this boundary.
func (s *BusinessService) CostDetail(guestID uint) (*models.GuestCostDetail, error) {
	var rows []models.GuestCostDetail
	err := s.DB.Raw("CALL proc_searchGuestCostDetail(?)", guestID).Scan(&rows).Error
	if err != nil {
		s.Log.Error("cost detail query failed", zap.Uint("guestId", guestID), zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// ExpiredStays lists guests past their declared stay length who have not
// checked out, from the precomputed view.
func (s *BusinessService) ExpiredStays() ([]models.ExpiredStayRow, error) {
	var rows []models.ExpiredStayRow
	err := s.DB.Raw("SELECT * FROM view_expiredStayGuest").Scan(&rows).Error
	if err != nil {
		s.Log.Error("expired stay query failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
