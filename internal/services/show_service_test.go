package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/models/dtos/requests"
)

func newShowService(t *testing.T) (*ShowService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewShowService(db, repositories.NewShowRepository(db), repositories.NewCategoryRepository(db))
	return svc, db
}

func TestShowCreatorMayEditOthersMayNot(t *testing.T) {
	svc, db := newShowService(t)
	ctx := context.Background()
	creator := newStaffUser(t, db, "host@newskoop.com", constants.RoleJournalist)
	other := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	editor := newStaffUser(t, db, "ed@newskoop.com", constants.RoleEditor)

	show, err := svc.Create(ctx, creator, &requests.ShowCreateRequest{
		Title:       "Breakfast show",
		Description: "Weekday mornings.",
		AudioFile:   "audio/breakfast-ep1.mp3",
		Language:    constants.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := &requests.ShowUpdateRequest{
		Title:       "Breakfast show",
		Description: "Weekday mornings, now with sport.",
		AudioFile:   "audio/breakfast-ep1.mp3",
		Language:    constants.LanguageEnglish,
	}

	if _, err := svc.Update(ctx, other, show.ID, req); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("sub-editor edit of another's show: got %v, want ErrPermissionDenied", err)
	}
	if _, err := svc.Update(ctx, creator, show.ID, req); err != nil {
		t.Errorf("creator edit: %v", err)
	}
	if _, err := svc.Update(ctx, editor, show.ID, req); err != nil {
		t.Errorf("editor edit: %v", err)
	}
}

func TestPublishShowRequiresEditor(t *testing.T) {
	svc, db := newShowService(t)
	ctx := context.Background()
	creator := newStaffUser(t, db, "host@newskoop.com", constants.RoleJournalist)
	editor := newStaffUser(t, db, "ed@newskoop.com", constants.RoleEditor)

	show, err := svc.Create(ctx, creator, &requests.ShowCreateRequest{
		Title:       "Drive time",
		Description: "Afternoon traffic and talk.",
		AudioFile:   "audio/drive-ep1.mp3",
		Language:    constants.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Publish(ctx, creator, show.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("creator publish: got %v, want ErrPermissionDenied", err)
	}
	published, err := svc.Publish(ctx, editor, show.ID)
	if err != nil {
		t.Fatalf("editor publish: %v", err)
	}
	if published.Status != constants.StatusPublished || published.PublishedAt == nil {
		t.Error("publish did not stamp status and published_at")
	}
}

func TestTranslateShowDoesNotCopyAudio(t *testing.T) {
	svc, db := newShowService(t)
	ctx := context.Background()
	creator := newStaffUser(t, db, "host@newskoop.com", constants.RoleJournalist)
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)

	show, err := svc.Create(ctx, creator, &requests.ShowCreateRequest{
		Title:       "Weekend review",
		Description: "The week's news in review.",
		AudioFile:   "audio/review-en.mp3",
		Language:    constants.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	translation, err := svc.Translate(ctx, subEditor, show.ID, constants.LanguageAfrikaans)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if translation.AudioFile != "" {
		t.Errorf("translation carries audio %q, want none", translation.AudioFile)
	}
	if translation.OriginalShowID == nil || *translation.OriginalShowID != show.ID {
		t.Error("translation not linked to the original")
	}

	if _, err := svc.Translate(ctx, subEditor, show.ID, constants.LanguageAfrikaans); !errors.Is(err, ErrDuplicateTranslation) {
		t.Errorf("got %v, want ErrDuplicateTranslation", err)
	}
}
