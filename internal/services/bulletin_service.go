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

// BulletinService manages news bulletins and their ordered story lineups.
type BulletinService struct {
	db           *gorm.DB
	bulletinRepo *repositories.BulletinRepository
	storyRepo    *repositories.StoryRepository
	categoryRepo *repositories.CategoryRepository
}

// NewBulletinService creates a new bulletin service
func NewBulletinService(db *gorm.DB, bulletinRepo *repositories.BulletinRepository, storyRepo *repositories.StoryRepository, categoryRepo *repositories.CategoryRepository) *BulletinService {
	return &BulletinService{db: db, bulletinRepo: bulletinRepo, storyRepo: storyRepo, categoryRepo: categoryRepo}
}

// GetByID fetches a bulletin with its lineup or returns ErrNotFound.
func (svc *BulletinService) GetByID(ctx context.Context, id string) (*gormModels.Bulletin, error) {
	bulletin, err := svc.bulletinRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bulletin == nil {
		return nil, ErrNotFound
	}
	return bulletin, nil
}

// List retrieves bulletins matching the filter.
func (svc *BulletinService) List(ctx context.Context, filter repositories.BulletinFilter) ([]gormModels.Bulletin, error) {
	return svc.bulletinRepo.List(ctx, filter)
}

// Create creates a draft bulletin with its lineup. Story IDs that do not
// resolve are skipped rather than failing the request; the skipped IDs are
// returned to the caller. Sub-editor and above.
func (svc *BulletinService) Create(ctx context.Context, actor *gormModels.User, req *requests.BulletinCreateRequest) (*gormModels.Bulletin, []string, error) {
	if !permissions.Can(actor, permissions.ActionBulletinCreate, nil) {
		return nil, nil, ErrPermissionDenied
	}

	categories, err := svc.resolveCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, nil, err
	}

	bulletin := &gormModels.Bulletin{
		Title:    req.Title,
		EditorID: actor.ID,
		Intro:    req.Intro,
		Outro:    req.Outro,
		Status:   constants.StatusDraft,
		Language: req.Language,
	}

	var skipped []string
	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bulletin).Error; err != nil {
			return fmt.Errorf("failed to create bulletin: %w", err)
		}
		if len(categories) > 0 {
			if err := tx.Model(bulletin).Association("Categories").Replace(categories); err != nil {
				return fmt.Errorf("failed to link categories: %w", err)
			}
		}
		var err error
		skipped, err = setLineup(tx, bulletin.ID, req.StoryOrder)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	logging.Info("bulletin created",
		"bulletin", bulletin.ID, "actor", actor.ID,
		"stories", len(req.StoryOrder)-len(skipped), "skipped", skipped)
	full, err := svc.GetByID(ctx, bulletin.ID)
	return full, skipped, err
}

// Update edits a bulletin, replacing its lineup in full. Sub-editor and
// above. A status value in the request goes through the workflow table;
// moving to ARCHIVED is reserved for editors and above.
func (svc *BulletinService) Update(ctx context.Context, actor *gormModels.User, id string, req *requests.BulletinUpdateRequest) (*gormModels.Bulletin, []string, error) {
	bulletin, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !permissions.Can(actor, permissions.ActionBulletinEdit, bulletin) {
		return nil, nil, ErrPermissionDenied
	}

	categories, err := svc.resolveCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, nil, err
	}

	var publishedNow bool
	if req.Status != nil && *req.Status != bulletin.Status {
		if *req.Status == constants.StatusArchived && !permissions.IsEditorOrAbove(actor) {
			return nil, nil, ErrPermissionDenied
		}
		next, err := workflow.Transition(bulletin.Status, *req.Status)
		if err != nil {
			return nil, nil, err
		}
		bulletin.Status = next
		publishedNow = next == constants.StatusPublished
	}

	bulletin.Title = req.Title
	bulletin.Intro = req.Intro
	bulletin.Outro = req.Outro
	bulletin.Language = req.Language
	if publishedNow {
		now := time.Now().UTC()
		bulletin.PublishedAt = &now
	}

	var skipped []string
	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(bulletin).Error; err != nil {
			return fmt.Errorf("failed to update bulletin: %w", err)
		}
		if err := tx.Model(bulletin).Association("Categories").Replace(categories); err != nil {
			return fmt.Errorf("failed to update categories: %w", err)
		}
		var err error
		skipped, err = setLineup(tx, bulletin.ID, req.StoryOrder)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	if len(skipped) > 0 {
		logging.Warn("bulletin lineup skipped unknown stories",
			"bulletin", bulletin.ID, "skipped", skipped)
	}
	full, err := svc.GetByID(ctx, bulletin.ID)
	return full, skipped, err
}

// Publish moves a bulletin to PUBLISHED. Editor and above.
func (svc *BulletinService) Publish(ctx context.Context, actor *gormModels.User, id string) (*gormModels.Bulletin, error) {
	bulletin, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionBulletinPublish, bulletin) {
		return nil, ErrPermissionDenied
	}
	if !workflow.CanPublish(bulletin.Status) {
		return nil, &workflow.ErrInvalidTransition{From: bulletin.Status, To: constants.StatusPublished}
	}

	now := time.Now().UTC()
	bulletin.Status = constants.StatusPublished
	bulletin.PublishedAt = &now

	if err := svc.db.WithContext(ctx).Save(bulletin).Error; err != nil {
		return nil, fmt.Errorf("failed to publish bulletin: %w", err)
	}

	metrics.ContentPublished.WithLabelValues("bulletin").Inc()
	logging.Info("bulletin published", "bulletin", bulletin.ID, "actor", actor.ID)
	return bulletin, nil
}

// Delete removes a bulletin and its lineup rows. Sub-editor and above.
func (svc *BulletinService) Delete(ctx context.Context, actor *gormModels.User, id string) error {
	bulletin, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !permissions.Can(actor, permissions.ActionBulletinEdit, bulletin) {
		return ErrPermissionDenied
	}

	return svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bulletin_id = ?", bulletin.ID).Delete(&gormModels.BulletinStory{}).Error; err != nil {
			return fmt.Errorf("failed to delete lineup: %w", err)
		}
		if err := tx.Model(bulletin).Association("Categories").Clear(); err != nil {
			return fmt.Errorf("failed to unlink categories: %w", err)
		}
		if err := tx.Delete(bulletin).Error; err != nil {
			return fmt.Errorf("failed to delete bulletin: %w", err)
		}
		return nil
	})
}

// Translate creates a DRAFT copy of the bulletin in the target language,
// linked to the canonical original, carrying over the lineup in order.
// Sub-editor and above; one translation per language per group.
func (svc *BulletinService) Translate(ctx context.Context, actor *gormModels.User, id string, language constants.Language) (*gormModels.Bulletin, error) {
	bulletin, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionBulletinTranslate, bulletin) {
		return nil, ErrPermissionDenied
	}
	if !language.Valid() {
		return nil, NewValidationError("language", "unsupported language")
	}

	root := bulletin
	if bulletin.OriginalBulletinID != nil {
		root, err = svc.GetByID(ctx, *bulletin.OriginalBulletinID)
		if err != nil {
			return nil, err
		}
	}

	taken, err := svc.bulletinRepo.TranslationLanguages(ctx, root)
	if err != nil {
		return nil, err
	}
	for _, l := range taken {
		if l == language {
			return nil, ErrDuplicateTranslation
		}
	}

	translation := &gormModels.Bulletin{
		Title:              root.Title,
		EditorID:           actor.ID,
		Intro:              root.Intro,
		Outro:              root.Outro,
		Status:             constants.StatusDraft,
		Language:           language,
		OriginalBulletinID: &root.ID,
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(translation).Error; err != nil {
			return fmt.Errorf("failed to create translation: %w", err)
		}
		if len(root.Categories) > 0 {
			if err := tx.Model(translation).Association("Categories").Replace(root.Categories); err != nil {
				return fmt.Errorf("failed to copy categories: %w", err)
			}
		}
		for _, bs := range root.BulletinStories {
			row := &gormModels.BulletinStory{
				BulletinID: translation.ID,
				StoryID:    bs.StoryID,
				Order:      bs.Order,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to copy lineup: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TranslationsCreated.WithLabelValues("bulletin").Inc()
	logging.Info("bulletin translated",
		"bulletin", root.ID, "translation", translation.ID,
		"language", language, "actor", actor.ID)
	return svc.GetByID(ctx, translation.ID)
}

// setLineup replaces the bulletin's lineup in full. Story IDs that do not
// resolve are skipped and returned; resolvable stories keep their relative
// order under consecutive 0-based positions.
func setLineup(tx *gorm.DB, bulletinID string, storyIDs []string) (skipped []string, err error) {
	if err := tx.Where("bulletin_id = ?", bulletinID).Delete(&gormModels.BulletinStory{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear lineup: %w", err)
	}

	position := 0
	seen := make(map[string]bool, len(storyIDs))
	for _, storyID := range storyIDs {
		if seen[storyID] {
			continue
		}
		seen[storyID] = true

		var count int64
		if err := tx.Model(&gormModels.Story{}).Where("id = ?", storyID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve story: %w", err)
		}
		if count == 0 {
			skipped = append(skipped, storyID)
			continue
		}

		row := &gormModels.BulletinStory{
			BulletinID: bulletinID,
			StoryID:    storyID,
			Order:      position,
		}
		if err := tx.Create(row).Error; err != nil {
			return nil, fmt.Errorf("failed to add story to lineup: %w", err)
		}
		position++
	}
	return skipped, nil
}

func (svc *BulletinService) resolveCategories(ctx context.Context, ids []string) ([]gormModels.Category, error) {
	categories, err := svc.categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, NewValidationError("categories", "one or more categories do not exist")
	}
	return categories, nil
}
