package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&gormModels.RadioStation{},
		&gormModels.User{},
		&gormModels.Category{},
		&gormModels.Story{},
		&gormModels.StoryContent{},
		&gormModels.AudioClip{},
		&gormModels.Bulletin{},
		&gormModels.BulletinStory{},
		&gormModels.Show{},
		&gormModels.Task{},
		&gormModels.TaskNote{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// newStaffUser persists a STAFF user with the given role.
func newStaffUser(t *testing.T, db *gorm.DB, email string, role constants.StaffRole) *gormModels.User {
	t.Helper()

	user := &gormModels.User{
		Email:     email,
		UserType:  constants.UserTypeStaff,
		StaffRole: &role,
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create staff user: %v", err)
	}
	return user
}

// newRadioStation persists an active station.
func newRadioStation(t *testing.T, db *gorm.DB, name string) *gormModels.RadioStation {
	t.Helper()

	station := &gormModels.RadioStation{
		Name:     name,
		Province: constants.ProvinceWesternCape,
		IsActive: true,
	}
	if err := db.Create(station).Error; err != nil {
		t.Fatalf("failed to create station: %v", err)
	}
	return station
}

// newRadioUser persists a RADIO user bound to the station.
func newRadioUser(t *testing.T, db *gorm.DB, email, stationID string, primary bool) *gormModels.User {
	t.Helper()

	user := &gormModels.User{
		Email:            email,
		UserType:         constants.UserTypeRadio,
		RadioStationID:   &stationID,
		IsPrimaryContact: primary,
		IsActive:         true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create radio user: %v", err)
	}
	return user
}

// assertSolePrimaryContact verifies exactly one primary contact exists for
// the station and that it is the expected user.
func assertSolePrimaryContact(t *testing.T, db *gorm.DB, stationID, wantUserID string) {
	t.Helper()

	var contacts []gormModels.User
	err := db.Where("radio_station_id = ? AND is_primary_contact = ?", stationID, true).
		Find(&contacts).Error
	if err != nil {
		t.Fatalf("failed to list primary contacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("got %d primary contacts, want exactly 1", len(contacts))
	}
	if contacts[0].ID != wantUserID {
		t.Errorf("primary contact is %s, want %s", contacts[0].ID, wantUserID)
	}
}

// newStory persists a story with content in the given status and language.
func newStory(t *testing.T, db *gorm.DB, title string, author *gormModels.User, status constants.ContentStatus, language constants.Language) *gormModels.Story {
	t.Helper()

	story := &gormModels.Story{
		Title:    title,
		AuthorID: author.ID,
		Status:   status,
		Language: language,
	}
	if err := db.Create(story).Error; err != nil {
		t.Fatalf("failed to create story: %v", err)
	}
	content := &gormModels.StoryContent{StoryID: story.ID, Content: "body of " + title}
	if err := db.Create(content).Error; err != nil {
		t.Fatalf("failed to create story content: %v", err)
	}
	return story
}
