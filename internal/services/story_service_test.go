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

func newStoryService(t *testing.T) (*StoryService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewStoryService(db, repositories.NewStoryRepository(db), repositories.NewCategoryRepository(db))
	return svc, db
}

func TestCreateStory(t *testing.T) {
	svc, db := newStoryService(t)
	ctx := context.Background()
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	story, err := svc.Create(ctx, journalist, &requests.StoryCreateRequest{
		Title:    "Load shedding update",
		Content:  "Stage 4 continues through the weekend.",
		Language: constants.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if story.Status != constants.StatusDraft {
		t.Errorf("new story status = %s, want DRAFT", story.Status)
	}
	if story.AuthorID != journalist.ID {
		t.Errorf("author = %s, want %s", story.AuthorID, journalist.ID)
	}
	if story.Content == nil || story.Content.Content == "" {
		t.Error("story content missing")
	}
}

func TestPublishStoryPermissions(t *testing.T) {
	svc, db := newStoryService(t)
	ctx := context.Background()
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)

	story := newStory(t, db, "Budget speech", journalist, constants.StatusDraft, constants.LanguageEnglish)

	if _, err := svc.Publish(ctx, journalist, story.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("journalist publish: got %v, want ErrPermissionDenied", err)
	}

	published, err := svc.Publish(ctx, subEditor, story.ID)
	if err != nil {
		t.Fatalf("sub-editor publish: %v", err)
	}
	if published.Status != constants.StatusPublished {
		t.Errorf("status = %s, want PUBLISHED", published.Status)
	}
	if published.PublishedAt == nil {
		t.Error("published_at not stamped")
	}
}

func TestPublishArchivedStoryRejected(t *testing.T) {
	svc, db := newStoryService(t)
	ctx := context.Background()
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)
	editor := newStaffUser(t, db, "ed@newskoop.com", constants.RoleEditor)

	story := newStory(t, db, "Old story", journalist, constants.StatusArchived, constants.LanguageEnglish)

	if _, err := svc.Publish(ctx, editor, story.ID); err == nil {
		t.Error("publish of archived story was accepted")
	}
}

func TestAuthorEditWindow(t *testing.T) {
	svc, db := newStoryService(t)
	ctx := context.Background()
	author := newStaffUser(t, db, "author@newskoop.com", constants.RoleJournalist)
	other := newStaffUser(t, db, "other@newskoop.com", constants.RoleIntern)

	story := newStory(t, db, "Drought relief", author, constants.StatusDraft, constants.LanguageEnglish)

	req := &requests.StoryUpdateRequest{
		Title:    "Drought relief extended",
		Content:  "Updated body.",
		Language: constants.LanguageEnglish,
	}

	if _, err := svc.Update(ctx, other, story.ID, req); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("non-author edit: got %v, want ErrPermissionDenied", err)
	}

	updated, err := svc.Update(ctx, author, story.ID, req)
	if err != nil {
		t.Fatalf("author edit of draft: %v", err)
	}
	if updated.Title != "Drought relief extended" {
		t.Errorf("title = %q", updated.Title)
	}

	// Once published, the author loses the edit window.
	if err := db.Model(&gormModels.Story{}).Where("id = ?", story.ID).
		Update("status", constants.StatusPublished).Error; err != nil {
		t.Fatalf("force publish: %v", err)
	}
	if _, err := svc.Update(ctx, author, story.ID, req); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("author edit of published story: got %v, want ErrPermissionDenied", err)
	}
}

func TestTranslateStory(t *testing.T) {
	svc, db := newStoryService(t)
	ctx := context.Background()
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	story := newStory(t, db, "Matric results", journalist, constants.StatusPublished, constants.LanguageEnglish)

	translation, err := svc.Translate(ctx, journalist, story.ID, constants.LanguageAfrikaans)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if translation.OriginalStoryID == nil || *translation.OriginalStoryID != story.ID {
		t.Error("translation not linked to the original")
	}
	if translation.Status != constants.StatusDraft {
		t.Errorf("translation status = %s, want DRAFT", translation.Status)
	}
	if translation.Language != constants.LanguageAfrikaans {
		t.Errorf("translation language = %s", translation.Language)
	}
}

func TestDuplicateTranslationRejectedWithoutSideEffects(t *testing.T) {
	svc, db := newStoryService(t)
	ctx := context.Background()
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	story := newStory(t, db, "Election coverage", journalist, constants.StatusPublished, constants.LanguageEnglish)

	if _, err := svc.Translate(ctx, journalist, story.ID, constants.LanguageXhosa); err != nil {
		t.Fatalf("first translation: %v", err)
	}

	var before int64
	db.Model(&gormModels.Story{}).Count(&before)

	_, err := svc.Translate(ctx, journalist, story.ID, constants.LanguageXhosa)
	if !errors.Is(err, ErrDuplicateTranslation) {
		t.Fatalf("got %v, want ErrDuplicateTranslation", err)
	}

	var after int64
	db.Model(&gormModels.Story{}).Count(&after)
	if before != after {
		t.Errorf("failed translation left a row behind: %d -> %d", before, after)
	}

	// Translating into the source language is also a duplicate.
	if _, err := svc.Translate(ctx, journalist, story.ID, constants.LanguageEnglish); !errors.Is(err, ErrDuplicateTranslation) {
		t.Errorf("got %v, want ErrDuplicateTranslation for source language", err)
	}
}

func TestTranslateTranslationAttachesToRoot(t *testing.T) {
	svc, db := newStoryService(t)
	ctx := context.Background()
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	root := newStory(t, db, "Water restrictions", journalist, constants.StatusPublished, constants.LanguageEnglish)
	af, err := svc.Translate(ctx, journalist, root.ID, constants.LanguageAfrikaans)
	if err != nil {
		t.Fatalf("first translation: %v", err)
	}

	xh, err := svc.Translate(ctx, journalist, af.ID, constants.LanguageXhosa)
	if err != nil {
		t.Fatalf("translate the translation: %v", err)
	}
	if xh.OriginalStoryID == nil || *xh.OriginalStoryID != root.ID {
		t.Error("second translation not attached to the canonical root")
	}
}

func TestAudioClips(t *testing.T) {
	svc, db := newStoryService(t)
	ctx := context.Background()
	author := newStaffUser(t, db, "author@newskoop.com", constants.RoleJournalist)

	story := newStory(t, db, "Morning news", author, constants.StatusDraft, constants.LanguageEnglish)

	duration := 95
	clip, err := svc.AddAudioClip(ctx, author, story.ID, &requests.AudioClipCreateRequest{
		Title:    "Interview",
		FilePath: "audio/interview.mp3",
		Duration: &duration,
	})
	if err != nil {
		t.Fatalf("AddAudioClip: %v", err)
	}

	if err := svc.DeleteAudioClip(ctx, author, story.ID, clip.ID); err != nil {
		t.Fatalf("DeleteAudioClip: %v", err)
	}
	if err := svc.DeleteAudioClip(ctx, author, story.ID, clip.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}
