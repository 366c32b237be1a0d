package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "newskoop/newsroom/internal/models/gorm"
)

// StationRepository handles radio_stations table operations using GORM
type StationRepository struct {
	db *gorm.DB
}

// NewStationRepository creates a new GORM-based station repository
func NewStationRepository(db *gorm.DB) *StationRepository {
	return &StationRepository{db: db}
}

// GetByID retrieves a station by primary key
func (r *StationRepository) GetByID(ctx context.Context, id string) (*gormModels.RadioStation, error) {
	var station gormModels.RadioStation

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&station).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch station: %w", err)
	}

	return &station, nil
}

// GetAll retrieves all stations ordered by name
func (r *StationRepository) GetAll(ctx context.Context) ([]gormModels.RadioStation, error) {
	var stations []gormModels.RadioStation

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&stations).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	return stations, nil
}

// GetPrimaryContact retrieves the station's primary contact, if one is set
func (r *StationRepository) GetPrimaryContact(ctx context.Context, stationID string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Where("radio_station_id = ? AND is_primary_contact = ?", stationID, true).
		First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch primary contact: %w", err)
	}

	return &user, nil
}
