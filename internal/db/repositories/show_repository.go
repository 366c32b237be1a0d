package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

// ShowRepository handles shows table operations using GORM
type ShowRepository struct {
	db *gorm.DB
}

// NewShowRepository creates a new GORM-based show repository
func NewShowRepository(db *gorm.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

// GetByID retrieves a show with categories and translations
func (r *ShowRepository) GetByID(ctx context.Context, id string) (*gormModels.Show, error) {
	var show gormModels.Show

	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Translations").
		Where("id = ?", id).
		First(&show).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch show: %w", err)
	}

	return &show, nil
}

// ShowFilter narrows List results.
type ShowFilter struct {
	Status   constants.ContentStatus
	Language constants.Language
	Search   string
}

// List retrieves shows matching the filter, newest first
func (r *ShowRepository) List(ctx context.Context, filter ShowFilter) ([]gormModels.Show, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Show{}).Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Language != "" {
		q = q.Where("language = ?", filter.Language)
	}
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	var shows []gormModels.Show
	if err := q.Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}

// TranslationLanguages returns the languages occupied by the show's
// translation group.
func (r *ShowRepository) TranslationLanguages(ctx context.Context, show *gormModels.Show) ([]constants.Language, error) {
	languages := []constants.Language{show.Language}

	var translated []constants.Language
	err := r.db.WithContext(ctx).
		Model(&gormModels.Show{}).
		Where("original_show_id = ?", show.ID).
		Pluck("language", &translated).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch translation languages: %w", err)
	}
	return append(languages, translated...), nil
}
