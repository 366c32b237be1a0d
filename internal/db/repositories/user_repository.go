package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

// UserRepository handles users table operations using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM-based user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by primary key
func (r *UserRepository) GetByID(ctx context.Context, id string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// UserFilter narrows List results.
type UserFilter struct {
	UserType  constants.UserType
	StaffRole constants.StaffRole
	StationID string
	IsActive  *bool
	Search    string
}

// List retrieves users matching the filter, newest first
func (r *UserRepository) List(ctx context.Context, filter UserFilter) ([]gormModels.User, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.User{}).Order("created_at DESC")

	if filter.UserType != "" {
		q = q.Where("user_type = ?", filter.UserType)
	}
	if filter.StaffRole != "" {
		q = q.Where("staff_role = ?", filter.StaffRole)
	}
	if filter.StationID != "" {
		q = q.Where("radio_station_id = ?", filter.StationID)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		q = q.Where("email LIKE ?", "%"+filter.Search+"%")
	}

	var users []gormModels.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListByStation retrieves a station's users, primary contact first
func (r *UserRepository) ListByStation(ctx context.Context, stationID string) ([]gormModels.User, error) {
	var users []gormModels.User

	err := r.db.WithContext(ctx).
		Where("radio_station_id = ?", stationID).
		Order("is_primary_contact DESC, email ASC").
		Find(&users).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list station users: %w", err)
	}
	return users, nil
}

// EmailExists reports whether any user already has the email
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}
