package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/models/dtos/requests"
	gormModels "newskoop/newsroom/internal/models/gorm"
	"newskoop/newsroom/internal/permissions"
)

// UserService handles authentication and user administration.
type UserService struct {
	db       *gorm.DB
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, userRepo *repositories.UserRepository) *UserService {
	return &UserService{db: db, userRepo: userRepo}
}

// Authenticate verifies credentials and returns the user. Inactive users
// are rejected even with a correct password.
func (svc *UserService) Authenticate(ctx context.Context, email, password string) (*gormModels.User, error) {
	user, err := svc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logging.Warn("failed login attempt", "email", email)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		logging.Warn("login attempt by inactive user", "email", email)
		return nil, ErrAccountInactive
	}

	return user, nil
}

// GetByID fetches the user or returns ErrNotFound.
func (svc *UserService) GetByID(ctx context.Context, id string) (*gormModels.User, error) {
	user, err := svc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List returns users matching the filter. Admin only.
func (svc *UserService) List(ctx context.Context, actor *gormModels.User, filter repositories.UserFilter) ([]gormModels.User, error) {
	if !permissions.Can(actor, permissions.ActionUserManage, nil) {
		return nil, ErrPermissionDenied
	}
	return svc.userRepo.List(ctx, filter)
}

// CreateStaffUser creates a STAFF user with a hashed password. Admin only.
func (svc *UserService) CreateStaffUser(ctx context.Context, actor *gormModels.User, req *requests.StaffUserCreateRequest) (*gormModels.User, error) {
	if !permissions.Can(actor, permissions.ActionUserManage, nil) {
		return nil, ErrPermissionDenied
	}

	exists, err := svc.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewValidationError("email", "a user with this email already exists")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.StaffRole
	user := &gormModels.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MobileNumber: req.MobileNumber,
		UserType:     constants.UserTypeStaff,
		StaffRole:    &role,
		IsActive:     req.IsActive,
	}

	if err := svc.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create staff user: %w", err)
	}

	logging.Info("staff user created", "email", user.Email, "role", role.String(), "actor", actor.ID)
	return user, nil
}

// CreateRadioUser creates a RADIO user bound to a station. When the primary
// contact flag is set, any existing primary contact for the station is
// cleared in the same transaction. Admin only.
func (svc *UserService) CreateRadioUser(ctx context.Context, actor *gormModels.User, req *requests.RadioUserCreateRequest) (*gormModels.User, error) {
	if !permissions.Can(actor, permissions.ActionUserManage, nil) {
		return nil, ErrPermissionDenied
	}

	exists, err := svc.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewValidationError("email", "a user with this email already exists")
	}

	var station gormModels.RadioStation
	if err := svc.db.WithContext(ctx).First(&station, "id = ?", req.RadioStationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewValidationError("radio_station", "selected radio station does not exist")
		}
		return nil, fmt.Errorf("failed to fetch station: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &gormModels.User{
		Email:            req.Email,
		PasswordHash:     hash,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MobileNumber:     req.MobileNumber,
		UserType:         constants.UserTypeRadio,
		RadioStationID:   &station.ID,
		IsPrimaryContact: req.IsPrimaryContact,
		IsActive:         req.IsActive,
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.IsPrimaryContact {
			if err := clearPrimaryContact(tx, station.ID); err != nil {
				return err
			}
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create radio user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Info("radio user created", "email", user.Email, "station", station.ID, "actor", actor.ID)
	return user, nil
}

// UpdateStaffUser applies a partial update to a STAFF user. Admin only.
func (svc *UserService) UpdateStaffUser(ctx context.Context, actor *gormModels.User, id string, req *requests.StaffUserUpdateRequest) (*gormModels.User, error) {
	if !permissions.Can(actor, permissions.ActionUserManage, nil) {
		return nil, ErrPermissionDenied
	}

	user, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.UserType != constants.UserTypeStaff {
		return nil, NewValidationError("user_type", "not a staff user")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.MobileNumber != nil {
		user.MobileNumber = *req.MobileNumber
	}
	if req.StaffRole != nil {
		user.StaffRole = req.StaffRole
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := svc.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update staff user: %w", err)
	}
	return user, nil
}

// UpdateRadioUser applies a partial update to a RADIO user. Admin only.
func (svc *UserService) UpdateRadioUser(ctx context.Context, actor *gormModels.User, id string, req *requests.RadioUserUpdateRequest) (*gormModels.User, error) {
	if !permissions.Can(actor, permissions.ActionUserManage, nil) {
		return nil, ErrPermissionDenied
	}

	user, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.UserType != constants.UserTypeRadio {
		return nil, NewValidationError("user_type", "not a radio user")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.MobileNumber != nil {
		user.MobileNumber = *req.MobileNumber
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := svc.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update radio user: %w", err)
	}
	return user, nil
}

// Delete removes a user. Admin only.
func (svc *UserService) Delete(ctx context.Context, actor *gormModels.User, id string) error {
	if !permissions.Can(actor, permissions.ActionUserManage, nil) {
		return ErrPermissionDenied
	}

	user, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := svc.db.WithContext(ctx).Delete(user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logging.Info("user deleted", "email", user.Email, "actor", actor.ID)
	return nil
}

// ResetPassword sets a new password for a user. Admin only.
func (svc *UserService) ResetPassword(ctx context.Context, actor *gormModels.User, id, password string) error {
	if !permissions.Can(actor, permissions.ActionUserManage, nil) {
		return ErrPermissionDenied
	}

	user, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	if err := svc.db.WithContext(ctx).Model(user).Update("password_hash", hash).Error; err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	logging.Info("password reset", "user", user.ID, "actor", actor.ID)
	return nil
}

// SetActive toggles a user's active flag. Admin only.
func (svc *UserService) SetActive(ctx context.Context, actor *gormModels.User, id string, isActive bool) error {
	if !permissions.Can(actor, permissions.ActionUserManage, nil) {
		return ErrPermissionDenied
	}

	user, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := svc.db.WithContext(ctx).Model(user).Update("is_active", isActive).Error; err != nil {
		return fmt.Errorf("failed to update active status: %w", err)
	}
	return nil
}

// UpdateProfile lets a user edit their own contact details.
func (svc *UserService) UpdateProfile(ctx context.Context, actor *gormModels.User, req *requests.ProfileUpdateRequest) (*gormModels.User, error) {
	actor.FirstName = req.FirstName
	actor.LastName = req.LastName
	actor.MobileNumber = req.MobileNumber

	if err := svc.db.WithContext(ctx).Save(actor).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return actor, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// clearPrimaryContact resets the primary contact flag for every user of the
// station. Must run inside the caller's transaction so that the at-most-one
// invariant holds at commit.
func clearPrimaryContact(tx *gorm.DB, stationID string) error {
	err := tx.Model(&gormModels.User{}).
		Where("radio_station_id = ? AND is_primary_contact = ?", stationID, true).
		Update("is_primary_contact", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear primary contact: %w", err)
	}
	return nil
}
