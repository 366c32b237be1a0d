package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "newskoop/newsroom/internal/models/gorm"
)

// CategoryRepository handles categories table operations using GORM
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new GORM-based category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID retrieves a category by primary key
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*gormModels.Category, error) {
	var category gormModels.Category

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&category).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	return &category, nil
}

// GetBySlug retrieves a category by slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*gormModels.Category, error) {
	var category gormModels.Category

	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&category).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	return &category, nil
}

// GetAll retrieves every category ordered by name
func (r *CategoryRepository) GetAll(ctx context.Context) ([]gormModels.Category, error) {
	var categories []gormModels.Category

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetTree retrieves root categories with their children preloaded
func (r *CategoryRepository) GetTree(ctx context.Context) ([]gormModels.Category, error) {
	var roots []gormModels.Category

	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Preload("Children").
		Order("name ASC").
		Find(&roots).Error

	if err != nil {
		return nil, fmt.Errorf("failed to load category tree: %w", err)
	}
	return roots, nil
}

// GetChildren retrieves the direct children of a category
func (r *CategoryRepository) GetChildren(ctx context.Context, id string) ([]gormModels.Category, error) {
	var children []gormModels.Category

	err := r.db.WithContext(ctx).
		Where("parent_id = ?", id).
		Find(&children).Error

	if err != nil {
		return nil, fmt.Errorf("failed to load children: %w", err)
	}
	return children, nil
}

// GetByIDs resolves a set of category IDs; unknown IDs are simply absent
// from the result.
func (r *CategoryRepository) GetByIDs(ctx context.Context, ids []string) ([]gormModels.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var categories []gormModels.Category
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", err)
	}
	return categories, nil
}

// ContentCounts returns the number of stories, bulletins and shows linked to
// the category.
func (r *CategoryRepository) ContentCounts(ctx context.Context, id string) (stories, bulletins, shows int64, err error) {
	db := r.db.WithContext(ctx)

	if err = db.Table("story_categories").Where("category_id = ?", id).Count(&stories).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count stories: %w", err)
	}
	if err = db.Table("bulletin_categories").Where("category_id = ?", id).Count(&bulletins).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count bulletins: %w", err)
	}
	if err = db.Table("show_categories").Where("category_id = ?", id).Count(&shows).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count shows: %w", err)
	}
	return stories, bulletins, shows, nil
}
