package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/metrics"
	"newskoop/newsroom/internal/models/dtos/requests"
	gormModels "newskoop/newsroom/internal/models/gorm"
	"newskoop/newsroom/internal/permissions"
	"newskoop/newsroom/internal/workflow"
)

// StoryService covers the story lifecycle: authoring, categorisation,
// audio attachments, publication and translation.
type StoryService struct {
	db           *gorm.DB
	storyRepo    *repositories.StoryRepository
	categoryRepo *repositories.CategoryRepository
}

// NewStoryService creates a new story service
func NewStoryService(db *gorm.DB, storyRepo *repositories.StoryRepository, categoryRepo *repositories.CategoryRepository) *StoryService {
	return &StoryService{db: db, storyRepo: storyRepo, categoryRepo: categoryRepo}
}

// GetByID fetches a story with its associations or returns ErrNotFound.
func (svc *StoryService) GetByID(ctx context.Context, id string) (*gormModels.Story, error) {
	story, err := svc.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrNotFound
	}
	return story, nil
}

// List retrieves stories matching the filter.
func (svc *StoryService) List(ctx context.Context, filter repositories.StoryFilter) ([]gormModels.Story, error) {
	return svc.storyRepo.List(ctx, filter)
}

// Create creates a draft story with its content and category links in a
// single transaction. Any staff member may author a story.
func (svc *StoryService) Create(ctx context.Context, actor *gormModels.User, req *requests.StoryCreateRequest) (*gormModels.Story, error) {
	if !permissions.Can(actor, permissions.ActionStoryCreate, nil) {
		return nil, ErrPermissionDenied
	}

	categories, err := svc.resolveCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	story := &gormModels.Story{
		Title:    req.Title,
		AuthorID: actor.ID,
		Status:   constants.StatusDraft,
		Language: req.Language,
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(story).Error; err != nil {
			return fmt.Errorf("failed to create story: %w", err)
		}
		content := &gormModels.StoryContent{StoryID: story.ID, Content: req.Content}
		if err := tx.Create(content).Error; err != nil {
			return fmt.Errorf("failed to create story content: %w", err)
		}
		if len(categories) > 0 {
			if err := tx.Model(story).Association("Categories").Replace(categories); err != nil {
				return fmt.Errorf("failed to link categories: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Info("story created", "story", story.ID, "actor", actor.ID, "language", story.Language)
	return svc.GetByID(ctx, story.ID)
}

// Update edits a story. Sub-editors and above may always edit; the author
// may edit while the story is still in a pre-publication state. A status
// value in the request goes through the workflow table; moving to ARCHIVED
// is reserved for editors and above.
func (svc *StoryService) Update(ctx context.Context, actor *gormModels.User, id string, req *requests.StoryUpdateRequest) (*gormModels.Story, error) {
	story, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionStoryEdit, story) {
		return nil, ErrPermissionDenied
	}

	categories, err := svc.resolveCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	var publishedNow bool
	if req.Status != nil && *req.Status != story.Status {
		if !permissions.IsSubEditorOrAbove(actor) {
			return nil, ErrPermissionDenied
		}
		if *req.Status == constants.StatusArchived && !permissions.IsEditorOrAbove(actor) {
			return nil, ErrPermissionDenied
		}
		next, err := workflow.Transition(story.Status, *req.Status)
		if err != nil {
			return nil, err
		}
		story.Status = next
		publishedNow = next == constants.StatusPublished
	}

	story.Title = req.Title
	story.Language = req.Language
	if publishedNow {
		now := time.Now().UTC()
		story.PublishedAt = &now
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(story).Error; err != nil {
			return fmt.Errorf("failed to update story: %w", err)
		}
		if err := tx.Model(&gormModels.StoryContent{}).
			Where("story_id = ?", story.ID).
			Update("content", req.Content).Error; err != nil {
			return fmt.Errorf("failed to update story content: %w", err)
		}
		if err := tx.Model(story).Association("Categories").Replace(categories); err != nil {
			return fmt.Errorf("failed to update categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return svc.GetByID(ctx, story.ID)
}

// Publish moves a story to PUBLISHED and stamps published_at. Sub-editor
// and above only.
func (svc *StoryService) Publish(ctx context.Context, actor *gormModels.User, id string) (*gormModels.Story, error) {
	story, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionStoryPublish, story) {
		return nil, ErrPermissionDenied
	}
	if !workflow.CanPublish(story.Status) {
		return nil, &workflow.ErrInvalidTransition{From: story.Status, To: constants.StatusPublished}
	}

	now := time.Now().UTC()
	story.Status = constants.StatusPublished
	story.PublishedAt = &now

	if err := svc.db.WithContext(ctx).Save(story).Error; err != nil {
		return nil, fmt.Errorf("failed to publish story: %w", err)
	}

	metrics.ContentPublished.WithLabelValues("story").Inc()
	logging.Info("story published", "story", story.ID, "actor", actor.ID)
	return story, nil
}

// Delete removes a story and its dependent rows. Sub-editor and above.
func (svc *StoryService) Delete(ctx context.Context, actor *gormModels.User, id string) error {
	story, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !permissions.IsSubEditorOrAbove(actor) {
		return ErrPermissionDenied
	}

	return svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", story.ID).Delete(&gormModels.StoryContent{}).Error; err != nil {
			return fmt.Errorf("failed to delete story content: %w", err)
		}
		if err := tx.Where("story_id = ?", story.ID).Delete(&gormModels.AudioClip{}).Error; err != nil {
			return fmt.Errorf("failed to delete audio clips: %w", err)
		}
		if err := tx.Model(story).Association("Categories").Clear(); err != nil {
			return fmt.Errorf("failed to unlink categories: %w", err)
		}
		if err := tx.Delete(story).Error; err != nil {
			return fmt.Errorf("failed to delete story: %w", err)
		}
		return nil
	})
}

// AddAudioClip attaches an audio file reference to a story. Anyone allowed
// to edit the story may attach clips.
func (svc *StoryService) AddAudioClip(ctx context.Context, actor *gormModels.User, storyID string, req *requests.AudioClipCreateRequest) (*gormModels.AudioClip, error) {
	story, err := svc.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionStoryEdit, story) {
		return nil, ErrPermissionDenied
	}

	clip := &gormModels.AudioClip{
		StoryID:     story.ID,
		Title:       req.Title,
		Description: req.Description,
		FilePath:    req.FilePath,
		Duration:    req.Duration,
	}
	if err := svc.db.WithContext(ctx).Create(clip).Error; err != nil {
		return nil, fmt.Errorf("failed to create audio clip: %w", err)
	}
	return clip, nil
}

// DeleteAudioClip detaches and removes an audio clip from a story.
func (svc *StoryService) DeleteAudioClip(ctx context.Context, actor *gormModels.User, storyID, clipID string) error {
	story, err := svc.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	if !permissions.Can(actor, permissions.ActionStoryEdit, story) {
		return ErrPermissionDenied
	}

	result := svc.db.WithContext(ctx).
		Where("id = ? AND story_id = ?", clipID, story.ID).
		Delete(&gormModels.AudioClip{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete audio clip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Translate creates a DRAFT copy of the story in the target language,
// linked to the canonical original. The translation group may hold at most
// one story per language; translating a translation attaches the new copy
// to the same root.
func (svc *StoryService) Translate(ctx context.Context, actor *gormModels.User, id string, language constants.Language) (*gormModels.Story, error) {
	story, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionStoryTranslate, story) {
		return nil, ErrPermissionDenied
	}
	if !language.Valid() {
		return nil, NewValidationError("language", "unsupported language")
	}

	root := story
	if story.OriginalStoryID != nil {
		root, err = svc.GetByID(ctx, *story.OriginalStoryID)
		if err != nil {
			return nil, err
		}
	}

	taken, err := svc.storyRepo.TranslationLanguages(ctx, root)
	if err != nil {
		return nil, err
	}
	for _, l := range taken {
		if l == language {
			return nil, ErrDuplicateTranslation
		}
	}

	translation := &gormModels.Story{
		Title:           root.Title,
		AuthorID:        actor.ID,
		Status:          constants.StatusDraft,
		Language:        language,
		OriginalStoryID: &root.ID,
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(translation).Error; err != nil {
			return fmt.Errorf("failed to create translation: %w", err)
		}
		sourceContent := ""
		if root.Content != nil {
			sourceContent = root.Content.Content
		}
		content := &gormModels.StoryContent{StoryID: translation.ID, Content: sourceContent}
		if err := tx.Create(content).Error; err != nil {
			return fmt.Errorf("failed to copy story content: %w", err)
		}
		if len(root.Categories) > 0 {
			if err := tx.Model(translation).Association("Categories").Replace(root.Categories); err != nil {
				return fmt.Errorf("failed to copy categories: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TranslationsCreated.WithLabelValues("story").Inc()
	logging.Info("story translated",
		"story", root.ID, "translation", translation.ID,
		"language", language, "actor", actor.ID)
	return svc.GetByID(ctx, translation.ID)
}

// resolveCategories maps request category IDs to rows, rejecting unknown IDs.
func (svc *StoryService) resolveCategories(ctx context.Context, ids []string) ([]gormModels.Category, error) {
	categories, err := svc.categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, NewValidationError("categories", "one or more categories do not exist")
	}
	return categories, nil
}
