package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/models/dtos/requests"
	gormModels "newskoop/newsroom/internal/models/gorm"
	"newskoop/newsroom/internal/permissions"
)

const (
	categoryTreeCacheKey = "categories:tree"
	categoryTreeTTL      = 10 * time.Minute
)

// CategoryService maintains the hierarchical category system.
type CategoryService struct {
	db           *gorm.DB
	categoryRepo *repositories.CategoryRepository
	cache        categoryCache
}

// categoryCache is the slice of the cache interface the service needs.
type categoryCache interface {
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)
	Delete(key string)
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, categoryRepo *repositories.CategoryRepository, cache categoryCache) *CategoryService {
	return &CategoryService{db: db, categoryRepo: categoryRepo, cache: cache}
}

// GetByID fetches a category or returns ErrNotFound.
func (svc *CategoryService) GetByID(ctx context.Context, id string) (*gormModels.Category, error) {
	category, err := svc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Tree returns root categories with children preloaded. Reads are served
// from cache; every mutation below invalidates the key.
func (svc *CategoryService) Tree(ctx context.Context) ([]gormModels.Category, error) {
	val, err := svc.cache.GetOrSet(categoryTreeCacheKey, categoryTreeTTL, func() (any, error) {
		return svc.categoryRepo.GetTree(ctx)
	})
	if err != nil {
		return nil, err
	}

	tree, ok := val.([]gormModels.Category)
	if !ok {
		// Redis round-trips values through JSON and loses the concrete
		// type; fall through to the repository.
		return svc.categoryRepo.GetTree(ctx)
	}
	return tree, nil
}

// Create creates a category under an optional parent. Editor and above.
func (svc *CategoryService) Create(ctx context.Context, actor *gormModels.User, req *requests.CategoryCreateRequest) (*gormModels.Category, error) {
	if !permissions.Can(actor, permissions.ActionCategoryManage, nil) {
		return nil, ErrPermissionDenied
	}

	existing, err := svc.categoryRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("slug", "a category with this slug already exists")
	}

	if req.ParentID != nil {
		if _, err := svc.GetByID(ctx, *req.ParentID); err != nil {
			return nil, NewValidationError("parent", "parent category does not exist")
		}
	}

	category := &gormModels.Category{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		ParentID:       req.ParentID,
		IsNewsStory:    req.IsNewsStory,
		IsNewsBulletin: req.IsNewsBulletin,
		IsSport:        req.IsSport,
		IsFinance:      req.IsFinance,
		IsSpecialty:    req.IsSpecialty,
	}

	if err := svc.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	svc.cache.Delete(categoryTreeCacheKey)
	logging.Info("category created", "category", category.ID, "slug", category.Slug, "actor", actor.ID)
	return category, nil
}

// Update edits a category. Reparenting onto itself or any of its
// descendants is rejected to keep the tree acyclic. Editor and above.
func (svc *CategoryService) Update(ctx context.Context, actor *gormModels.User, id string, req *requests.CategoryUpdateRequest) (*gormModels.Category, error) {
	if !permissions.Can(actor, permissions.ActionCategoryManage, nil) {
		return nil, ErrPermissionDenied
	}

	category, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := svc.categoryRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != category.ID {
		return nil, NewValidationError("slug", "a category with this slug already exists")
	}

	if req.ParentID != nil {
		parentID := *req.ParentID
		if parentID == category.ID {
			return nil, NewValidationError("parent", "cannot set self as parent")
		}

		isDescendant, err := svc.isDescendant(ctx, category.ID, parentID)
		if err != nil {
			return nil, err
		}
		if isDescendant {
			return nil, NewValidationError("parent", "cannot set a descendant as parent")
		}

		if _, err := svc.GetByID(ctx, parentID); err != nil {
			return nil, NewValidationError("parent", "parent category does not exist")
		}
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	category.ParentID = req.ParentID
	category.IsNewsStory = req.IsNewsStory
	category.IsNewsBulletin = req.IsNewsBulletin
	category.IsSport = req.IsSport
	category.IsFinance = req.IsFinance
	category.IsSpecialty = req.IsSpecialty

	if err := svc.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	svc.cache.Delete(categoryTreeCacheKey)
	return category, nil
}

// Delete removes a category. Categories with children or with any linked
// story, bulletin or show are protected. Editor and above.
func (svc *CategoryService) Delete(ctx context.Context, actor *gormModels.User, id string) error {
	if !permissions.Can(actor, permissions.ActionCategoryManage, nil) {
		return ErrPermissionDenied
	}

	category, err := svc.GetByID(ctx, id)
	if err != nil {
		return err
	}

	children, err := svc.categoryRepo.GetChildren(ctx, id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return NewValidationError("category", "cannot delete category with child categories")
	}

	stories, bulletins, shows, err := svc.categoryRepo.ContentCounts(ctx, id)
	if err != nil {
		return err
	}
	if stories > 0 || bulletins > 0 || shows > 0 {
		return NewValidationError("category", "cannot delete category with associated content")
	}

	if err := svc.db.WithContext(ctx).Delete(category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	svc.cache.Delete(categoryTreeCacheKey)
	logging.Info("category deleted", "category", id, "actor", actor.ID)
	return nil
}

// isDescendant walks the subtree under rootID looking for candidateID.
func (svc *CategoryService) isDescendant(ctx context.Context, rootID, candidateID string) (bool, error) {
	children, err := svc.categoryRepo.GetChildren(ctx, rootID)
	if err != nil {
		return false, err
	}

	for _, child := range children {
		if child.ID == candidateID {
			return true, nil
		}
		found, err := svc.isDescendant(ctx, child.ID, candidateID)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}
