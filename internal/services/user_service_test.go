package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/models/dtos/requests"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

func newUserService(t *testing.T) (*UserService, *gormModels.User, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewUserService(db, repositories.NewUserRepository(db))
	admin := newStaffUser(t, db, "admin@newskoop.com", constants.RoleAdmin)
	return svc, admin, db
}

func TestAuthenticate(t *testing.T) {
	svc, _, db := newUserService(t)
	ctx := context.Background()

	hash, err := hashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	user := &gormModels.User{
		Email:        "journalist@newskoop.com",
		PasswordHash: hash,
		UserType:     constants.UserTypeStaff,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "journalist@newskoop.com", "correct-horse")
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("got user %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "journalist@newskoop.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@newskoop.com", "correct-horse")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("inactive user with correct password", func(t *testing.T) {
		if err := db.Model(user).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate: %v", err)
		}
		_, err := svc.Authenticate(ctx, "journalist@newskoop.com", "correct-horse")
		if !errors.Is(err, ErrAccountInactive) {
			t.Errorf("got %v, want ErrAccountInactive", err)
		}
	})
}

func TestCreateStaffUserRequiresAdmin(t *testing.T) {
	svc, admin, db := newUserService(t)
	ctx := context.Background()
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	req := &requests.StaffUserCreateRequest{
		Email:     "editor@newskoop.com",
		Password:  "password123",
		StaffRole: constants.RoleEditor,
		IsActive:  true,
	}

	if _, err := svc.CreateStaffUser(ctx, journalist, req); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("journalist create: got %v, want ErrPermissionDenied", err)
	}

	user, err := svc.CreateStaffUser(ctx, admin, req)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if user.Role() != constants.RoleEditor {
		t.Errorf("got role %s, want EDITOR", user.Role())
	}

	if _, err := svc.CreateStaffUser(ctx, admin, req); err == nil {
		t.Error("duplicate email accepted")
	}
}

func TestCreateRadioUserDisplacesPrimaryContact(t *testing.T) {
	svc, admin, db := newUserService(t)
	ctx := context.Background()

	station := newRadioStation(t, db, "Cape Talk")
	first := newRadioUser(t, db, "first@station.com", station.ID, true)

	req := &requests.RadioUserCreateRequest{
		Email:            "second@station.com",
		Password:         "password123",
		RadioStationID:   station.ID,
		IsPrimaryContact: true,
		IsActive:         true,
	}
	second, err := svc.CreateRadioUser(ctx, admin, req)
	if err != nil {
		t.Fatalf("CreateRadioUser: %v", err)
	}

	assertSolePrimaryContact(t, db, station.ID, second.ID)

	var reloaded gormModels.User
	if err := db.First(&reloaded, "id = ?", first.ID).Error; err != nil {
		t.Fatalf("reload first: %v", err)
	}
	if reloaded.IsPrimaryContact {
		t.Error("previous primary contact was not cleared")
	}
}

func TestSetActiveAndResetPassword(t *testing.T) {
	svc, admin, db := newUserService(t)
	ctx := context.Background()
	user := newStaffUser(t, db, "target@newskoop.com", constants.RoleJournalist)

	if err := svc.SetActive(ctx, admin, user.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	var reloaded gormModels.User
	if err := db.First(&reloaded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsActive {
		t.Error("user still active after SetActive(false)")
	}

	if err := svc.ResetPassword(ctx, admin, user.ID, "new-password-1"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if err := db.First(&reloaded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.PasswordHash == "" || reloaded.PasswordHash == user.PasswordHash {
		t.Error("password hash unchanged after reset")
	}
}
