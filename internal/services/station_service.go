package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/models/dtos/requests"
	gormModels "newskoop/newsroom/internal/models/gorm"
	"newskoop/newsroom/internal/permissions"
)

// StationService handles radio station administration, including the
// one-primary-contact-per-station invariant and the deactivation cascade.
type StationService struct {
	db          *gorm.DB
	stationRepo *repositories.StationRepository
	userRepo    *repositories.UserRepository
}

// NewStationService creates a new station service
func NewStationService(db *gorm.DB, stationRepo *repositories.StationRepository, userRepo *repositories.UserRepository) *StationService {
	return &StationService{db: db, stationRepo: stationRepo, userRepo: userRepo}
}

// GetByID fetches a station or returns ErrNotFound.
func (svc *StationService) GetByID(ctx context.Context, id string) (*gormModels.RadioStation, error) {
	station, err := svc.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, ErrNotFound
	}
	return station, nil
}

// PrimaryContact returns the station's primary contact, nil when unset.
func (svc *StationService) PrimaryContact(ctx context.Context, stationID string) (*gormModels.User, error) {
	return svc.stationRepo.GetPrimaryContact(ctx, stationID)
}

// List returns all stations. Admin only.
func (svc *StationService) List(ctx context.Context, actor *gormModels.User) ([]gormModels.RadioStation, error) {
	if !permissions.Can(actor, permissions.ActionStationManage, nil) {
		return nil, ErrPermissionDenied
	}
	return svc.stationRepo.GetAll(ctx)
}

// ListUsers returns a station's users, primary contact first. Admin only.
func (svc *StationService) ListUsers(ctx context.Context, actor *gormModels.User, stationID string) ([]gormModels.User, error) {
	if !permissions.Can(actor, permissions.ActionStationManage, nil) {
		return nil, ErrPermissionDenied
	}
	if _, err := svc.GetByID(ctx, stationID); err != nil {
		return nil, err
	}
	return svc.userRepo.ListByStation(ctx, stationID)
}

// Create creates a station and, when primary contact details are supplied,
// its first RADIO user flagged as primary contact in the same transaction.
func (svc *StationService) Create(ctx context.Context, actor *gormModels.User, req *requests.StationCreateRequest) (*gormModels.RadioStation, error) {
	if !permissions.Can(actor, permissions.ActionStationManage, nil) {
		return nil, ErrPermissionDenied
	}

	contact := req.PrimaryContact
	if contact != nil && contact.Email != "" {
		if contact.Password == "" {
			return nil, NewValidationError("primary_contact.password", "password is required for primary contact")
		}
		exists, err := svc.userRepo.EmailExists(ctx, contact.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, NewValidationError("primary_contact.email", "a user with this email already exists")
		}
	}

	religion := req.ReligionAccess
	if religion == "" {
		religion = constants.ReligionGeneralOnly
	}

	station := &gormModels.RadioStation{
		Name:                req.Name,
		Description:         req.Description,
		Province:            req.Province,
		ContactNumber:       req.ContactNumber,
		ContactEmail:        req.ContactEmail,
		Website:             req.Website,
		IsActive:            req.IsActive,
		ReligionAccess:      religion,
		AccessEnglish:       req.AccessEnglish,
		AccessAfrikaans:     req.AccessAfrikaans,
		AccessXhosa:         req.AccessXhosa,
		AccessNewsStories:   req.AccessNewsStories,
		AccessNewsBulletins: req.AccessNewsBulletins,
		AccessSport:         req.AccessSport,
		AccessFinance:       req.AccessFinance,
		AccessSpecialty:     req.AccessSpecialty,
	}

	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(station).Error; err != nil {
			return fmt.Errorf("failed to create station: %w", err)
		}

		if contact != nil && contact.Email != "" {
			hash, err := hashPassword(contact.Password)
			if err != nil {
				return err
			}
			user := &gormModels.User{
				Email:            contact.Email,
				PasswordHash:     hash,
				FirstName:        contact.FirstName,
				LastName:         contact.LastName,
				MobileNumber:     contact.MobileNumber,
				UserType:         constants.UserTypeRadio,
				RadioStationID:   &station.ID,
				IsPrimaryContact: true,
				IsActive:         true,
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("failed to create primary contact: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Info("station created", "station", station.ID, "name", station.Name, "actor", actor.ID)
	return station, nil
}

// Update edits a station. Deactivating a previously active station also
// deactivates all of its users in the same transaction.
func (svc *StationService) Update(ctx context.Context, actor *gormModels.User, id string, req *requests.StationUpdateRequest) (*gormModels.RadioStation, error) {
	if !permissions.Can(actor, permissions.ActionStationManage, nil) {
		return nil, ErrPermissionDenied
	}

	station, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasActive := station.IsActive

	station.Name = req.Name
	station.Description = req.Description
	station.Province = req.Province
	station.ContactNumber = req.ContactNumber
	station.ContactEmail = req.ContactEmail
	station.Website = req.Website
	station.IsActive = req.IsActive
	if req.ReligionAccess != "" {
		station.ReligionAccess = req.ReligionAccess
	}
	station.AccessEnglish = req.AccessEnglish
	station.AccessAfrikaans = req.AccessAfrikaans
	station.AccessXhosa = req.AccessXhosa
	station.AccessNewsStories = req.AccessNewsStories
	station.AccessNewsBulletins = req.AccessNewsBulletins
	station.AccessSport = req.AccessSport
	station.AccessFinance = req.AccessFinance
	station.AccessSpecialty = req.AccessSpecialty

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if wasActive && !station.IsActive {
			err := tx.Model(&gormModels.User{}).
				Where("radio_station_id = ?", station.ID).
				Update("is_active", false).Error
			if err != nil {
				return fmt.Errorf("failed to deactivate station users: %w", err)
			}
		}
		if err := tx.Save(station).Error; err != nil {
			return fmt.Errorf("failed to update station: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if wasActive && !station.IsActive {
		logging.Info("station deactivated, users cascaded", "station", station.ID, "actor", actor.ID)
	}
	return station, nil
}

// Delete removes a station. Stations with users still attached must have
// them removed or reassigned first.
func (svc *StationService) Delete(ctx context.Context, actor *gormModels.User, id string) error {
	if !permissions.Can(actor, permissions.ActionStationManage, nil) {
		return ErrPermissionDenied
	}

	station, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var userCount int64
	err = svc.db.WithContext(ctx).Model(&gormModels.User{}).
		Where("radio_station_id = ?", id).
		Count(&userCount).Error
	if err != nil {
		return fmt.Errorf("failed to count station users: %w", err)
	}
	if userCount > 0 {
		return NewValidationError("station", "cannot delete a station that still has users")
	}

	if err := svc.db.WithContext(ctx).Delete(station).Error; err != nil {
		return fmt.Errorf("failed to delete station: %w", err)
	}

	logging.Info("station deleted", "station", id, "actor", actor.ID)
	return nil
}

// AddUser creates a RADIO user under the station. A set primary contact
// flag displaces any existing primary contact atomically.
func (svc *StationService) AddUser(ctx context.Context, actor *gormModels.User, stationID string, req *requests.RadioUserCreateRequest) (*gormModels.User, error) {
	if !permissions.Can(actor, permissions.ActionStationManage, nil) {
		return nil, ErrPermissionDenied
	}

	station, err := svc.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
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
			return fmt.Errorf("failed to create station user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Info("user added to station", "station", station.ID, "user", user.ID, "actor", actor.ID)
	return user, nil
}

// SetPrimaryContact makes the given user the station's sole primary
// contact. The clear and the set happen in one transaction so the invariant
// holds at every commit point, never just eventually.
func (svc *StationService) SetPrimaryContact(ctx context.Context, actor *gormModels.User, stationID, userID string) error {
	if !permissions.Can(actor, permissions.ActionStationManage, nil) {
		return ErrPermissionDenied
	}

	if _, err := svc.GetByID(ctx, stationID); err != nil {
		return err
	}

	var user gormModels.User
	err := svc.db.WithContext(ctx).
		Where("id = ? AND radio_station_id = ?", userID, stationID).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch station user: %w", err)
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearPrimaryContact(tx, stationID); err != nil {
			return err
		}
		err := tx.Model(&gormModels.User{}).
			Where("id = ?", user.ID).
			Update("is_primary_contact", true).Error
		if err != nil {
			return fmt.Errorf("failed to set primary contact: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logging.Info("primary contact updated", "station", stationID, "user", userID, "actor", actor.ID)
	return nil
}
