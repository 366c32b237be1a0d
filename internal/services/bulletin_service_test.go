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

func newBulletinService(t *testing.T) (*BulletinService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewBulletinService(db,
		repositories.NewBulletinRepository(db),
		repositories.NewStoryRepository(db),
		repositories.NewCategoryRepository(db))
	return svc, db
}

func lineupOf(t *testing.T, db *gorm.DB, bulletinID string) []gormModels.BulletinStory {
	t.Helper()
	var rows []gormModels.BulletinStory
	if err := db.Where("bulletin_id = ?", bulletinID).Order("position asc").Find(&rows).Error; err != nil {
		t.Fatalf("load lineup: %v", err)
	}
	return rows
}

func TestCreateBulletinSkipsUnknownStories(t *testing.T) {
	svc, db := newBulletinService(t)
	ctx := context.Background()
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	a := newStory(t, db, "Story A", journalist, constants.StatusPublished, constants.LanguageEnglish)
	b := newStory(t, db, "Story B", journalist, constants.StatusPublished, constants.LanguageEnglish)

	bulletin, skipped, err := svc.Create(ctx, subEditor, &requests.BulletinCreateRequest{
		Title:      "Midday bulletin",
		Intro:      "Good afternoon.",
		Language:   constants.LanguageEnglish,
		StoryOrder: []string{a.ID, "11111111-1111-1111-1111-111111111111", b.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(skipped) != 1 || skipped[0] != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("skipped = %v, want the unknown id", skipped)
	}

	rows := lineupOf(t, db, bulletin.ID)
	if len(rows) != 2 {
		t.Fatalf("lineup has %d rows, want 2", len(rows))
	}
	for i, row := range rows {
		if row.Order != i {
			t.Errorf("row %d has position %d", i, row.Order)
		}
	}
	if rows[0].StoryID != a.ID || rows[1].StoryID != b.ID {
		t.Error("lineup order does not follow the request")
	}
}

func TestUpdateBulletinReordersConsecutively(t *testing.T) {
	svc, db := newBulletinService(t)
	ctx := context.Background()
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	a := newStory(t, db, "Story A", journalist, constants.StatusPublished, constants.LanguageEnglish)
	b := newStory(t, db, "Story B", journalist, constants.StatusPublished, constants.LanguageEnglish)
	c := newStory(t, db, "Story C", journalist, constants.StatusPublished, constants.LanguageEnglish)
	d := newStory(t, db, "Story D", journalist, constants.StatusPublished, constants.LanguageEnglish)

	bulletin, _, err := svc.Create(ctx, subEditor, &requests.BulletinCreateRequest{
		Title:      "Evening bulletin",
		Intro:      "Good evening.",
		Language:   constants.LanguageEnglish,
		StoryOrder: []string{a.ID, b.ID, c.ID, d.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Drop B, keep the rest; positions must close the gap. Duplicates
	// collapse to the first occurrence.
	_, skipped, err := svc.Update(ctx, subEditor, bulletin.ID, &requests.BulletinUpdateRequest{
		Title:      "Evening bulletin",
		Intro:      "Good evening.",
		Language:   constants.LanguageEnglish,
		StoryOrder: []string{a.ID, c.ID, d.ID, a.ID},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}

	rows := lineupOf(t, db, bulletin.ID)
	want := []string{a.ID, c.ID, d.ID}
	if len(rows) != len(want) {
		t.Fatalf("lineup has %d rows, want %d", len(rows), len(want))
	}
	for i, row := range rows {
		if row.StoryID != want[i] || row.Order != i {
			t.Errorf("row %d = (%s, %d), want (%s, %d)", i, row.StoryID, row.Order, want[i], i)
		}
	}
}

func TestPublishBulletinRequiresEditor(t *testing.T) {
	svc, db := newBulletinService(t)
	ctx := context.Background()
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	editor := newStaffUser(t, db, "ed@newskoop.com", constants.RoleEditor)

	bulletin, _, err := svc.Create(ctx, subEditor, &requests.BulletinCreateRequest{
		Title:    "Morning bulletin",
		Intro:    "Good morning.",
		Language: constants.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Publish(ctx, subEditor, bulletin.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("sub-editor publish: got %v, want ErrPermissionDenied", err)
	}

	published, err := svc.Publish(ctx, editor, bulletin.ID)
	if err != nil {
		t.Fatalf("editor publish: %v", err)
	}
	if published.Status != constants.StatusPublished || published.PublishedAt == nil {
		t.Error("publish did not stamp status and published_at")
	}
}

func TestTranslateBulletinCopiesLineup(t *testing.T) {
	svc, db := newBulletinService(t)
	ctx := context.Background()
	editor := newStaffUser(t, db, "ed@newskoop.com", constants.RoleEditor)
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	a := newStory(t, db, "Story A", journalist, constants.StatusPublished, constants.LanguageEnglish)
	b := newStory(t, db, "Story B", journalist, constants.StatusPublished, constants.LanguageEnglish)

	bulletin, _, err := svc.Create(ctx, editor, &requests.BulletinCreateRequest{
		Title:      "Hourly bulletin",
		Intro:      "The headlines.",
		Language:   constants.LanguageEnglish,
		StoryOrder: []string{a.ID, b.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	translation, err := svc.Translate(ctx, editor, bulletin.ID, constants.LanguageAfrikaans)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if translation.OriginalBulletinID == nil || *translation.OriginalBulletinID != bulletin.ID {
		t.Error("translation not linked to the original")
	}

	rows := lineupOf(t, db, translation.ID)
	if len(rows) != 2 || rows[0].StoryID != a.ID || rows[1].StoryID != b.ID {
		t.Errorf("translated lineup = %v, want the original order", rows)
	}

	if _, err := svc.Translate(ctx, editor, bulletin.ID, constants.LanguageAfrikaans); !errors.Is(err, ErrDuplicateTranslation) {
		t.Errorf("got %v, want ErrDuplicateTranslation", err)
	}
}
