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

// ShowService manages pre-recorded programmes.
type ShowService struct {
	db           *gorm.DB
	showRepo     *repositories.ShowRepository
	categoryRepo *repositories.CategoryRepository
}

// NewShowService creates a new show service
func NewShowService(db *gorm.DB, showRepo *repositories.ShowRepository, categoryRepo *repositories.CategoryRepository) *ShowService {
	return &ShowService{db: db, showRepo: showRepo, categoryRepo: categoryRepo}
}

// GetByID fetches a show or returns ErrNotFound.
func (svc *ShowService) GetByID(ctx context.Context, id string) (*gormModels.Show, error) {
	show, err := svc.showRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, ErrNotFound
	}
	return show, nil
}

// List retrieves shows matching the filter.
func (svc *ShowService) List(ctx context.Context, filter repositories.ShowFilter) ([]gormModels.Show, error) {
	return svc.showRepo.List(ctx, filter)
}

// Create creates a draft show. Any staff member.
func (svc *ShowService) Create(ctx context.Context, actor *gormModels.User, req *requests.ShowCreateRequest) (*gormModels.Show, error) {
	if !permissions.Can(actor, permissions.ActionShowCreate, nil) {
		return nil, ErrPermissionDenied
	}

	categories, err := svc.resolveCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	show := &gormModels.Show{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   actor.ID,
		AudioFile:   req.AudioFile,
		Duration:    req.Duration,
		Status:      constants.StatusDraft,
		Language:    req.Language,
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(show).Error; err != nil {
			return fmt.Errorf("failed to create show: %w", err)
		}
		if len(categories) > 0 {
			if err := tx.Model(show).Association("Categories").Replace(categories); err != nil {
				return fmt.Errorf("failed to link categories: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Info("show created", "show", show.ID, "actor", actor.ID)
	return svc.GetByID(ctx, show.ID)
}

// Update edits a show. The creator may edit their own show; editors and
// above may edit any. A status value goes through the workflow table;
// moving to ARCHIVED is reserved for editors and above.
func (svc *ShowService) Update(ctx context.Context, actor *gormModels.User, id string, req *requests.ShowUpdateRequest) (*gormModels.Show, error) {
	show, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionShowEdit, show) {
		return nil, ErrPermissionDenied
	}

	categories, err := svc.resolveCategories(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	var publishedNow bool
	if req.Status != nil && *req.Status != show.Status {
		if !permissions.IsEditorOrAbove(actor) {
			return nil, ErrPermissionDenied
		}
		next, err := workflow.Transition(show.Status, *req.Status)
		if err != nil {
			return nil, err
		}
		show.Status = next
		publishedNow = next == constants.StatusPublished
	}

	show.Title = req.Title
	show.Description = req.Description
	if req.AudioFile != "" {
		show.AudioFile = req.AudioFile
	}
	if req.Duration != nil {
		show.Duration = req.Duration
	}
	show.Language = req.Language
	if publishedNow {
		now := time.Now().UTC()
		show.PublishedAt = &now
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(show).Error; err != nil {
			return fmt.Errorf("failed to update show: %w", err)
		}
		if err := tx.Model(show).Association("Categories").Replace(categories); err != nil {
			return fmt.Errorf("failed to update categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return svc.GetByID(ctx, show.ID)
}

// Publish moves a show to PUBLISHED. Editor and above.
func (svc *ShowService) Publish(ctx context.Context, actor *gormModels.User, id string) (*gormModels.Show, error) {
	show, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionShowPublish, show) {
		return nil, ErrPermissionDenied
	}
	if !workflow.CanPublish(show.Status) {
		return nil, &workflow.ErrInvalidTransition{From: show.Status, To: constants.StatusPublished}
	}

	now := time.Now().UTC()
	show.Status = constants.StatusPublished
	show.PublishedAt = &now

	if err := svc.db.WithContext(ctx).Save(show).Error; err != nil {
		return nil, fmt.Errorf("failed to publish show: %w", err)
	}

	metrics.ContentPublished.WithLabelValues("show").Inc()
	logging.Info("show published", "show", show.ID, "actor", actor.ID)
	return show, nil
}

// Delete removes a show. Creator or editor and above.
func (svc *ShowService) Delete(ctx context.Context, actor *gormModels.User, id string) error {
	show, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !permissions.Can(actor, permissions.ActionShowEdit, show) {
		return ErrPermissionDenied
	}

	return svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(show).Association("Categories").Clear(); err != nil {
			return fmt.Errorf("failed to unlink categories: %w", err)
		}
		if err := tx.Delete(show).Error; err != nil {
			return fmt.Errorf("failed to delete show: %w", err)
		}
		return nil
	})
}

// Translate creates a DRAFT copy of the show in the target language, linked
// to the canonical original. Sub-editor and above; one translation per
// language per group. The audio file reference is not carried over, a
// translated programme records its own audio.
func (svc *ShowService) Translate(ctx context.Context, actor *gormModels.User, id string, language constants.Language) (*gormModels.Show, error) {
	show, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permissions.Can(actor, permissions.ActionShowTranslate, show) {
		return nil, ErrPermissionDenied
	}
	if !language.Valid() {
		return nil, NewValidationError("language", "unsupported language")
	}

	root := show
	if show.OriginalShowID != nil {
		root, err = svc.GetByID(ctx, *show.OriginalShowID)
		if err != nil {
			return nil, err
		}
	}

	taken, err := svc.showRepo.TranslationLanguages(ctx, root)
	if err != nil {
		return nil, err
	}
	for _, l := range taken {
		if l == language {
			return nil, ErrDuplicateTranslation
		}
	}

	translation := &gormModels.Show{
		Title:          root.Title,
		Description:    root.Description,
		CreatorID:      actor.ID,
		Status:         constants.StatusDraft,
		Language:       language,
		OriginalShowID: &root.ID,
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
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TranslationsCreated.WithLabelValues("show").Inc()
	logging.Info("show translated",
		"show", root.ID, "translation", translation.ID,
		"language", language, "actor", actor.ID)
	return svc.GetByID(ctx, translation.ID)
}

func (svc *ShowService) resolveCategories(ctx context.Context, ids []string) ([]gormModels.Category, error) {
	categories, err := svc.categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, NewValidationError("categories", "one or more categories do not exist")
	}
	return categories, nil
}
