package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

// BulletinRepository handles bulletins table operations using GORM
type BulletinRepository struct {
	db *gorm.DB
}

// NewBulletinRepository creates a new GORM-based bulletin repository
func NewBulletinRepository(db *gorm.DB) *BulletinRepository {
	return &BulletinRepository{db: db}
}

// GetByID retrieves a bulletin with categories, ordered stories and translations
func (r *BulletinRepository) GetByID(ctx context.Context, id string) (*gormModels.Bulletin, error) {
	var bulletin gormModels.Bulletin

	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("BulletinStories", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("BulletinStories.Story").
		Preload("Translations").
		Where("id = ?", id).
		First(&bulletin).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch bulletin: %w", err)
	}

	return &bulletin, nil
}

// BulletinFilter narrows List results.
type BulletinFilter struct {
	Status   constants.ContentStatus
	Language constants.Language
	Search   string
}

// List retrieves bulletins matching the filter, newest first
func (r *BulletinRepository) List(ctx context.Context, filter BulletinFilter) ([]gormModels.Bulletin, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Bulletin{}).Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Language != "" {
		q = q.Where("language = ?", filter.Language)
	}
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	var bulletins []gormModels.Bulletin
	if err := q.Find(&bulletins).Error; err != nil {
		return nil, fmt.Errorf("failed to list bulletins: %w", err)
	}
	return bulletins, nil
}

// TranslationLanguages returns the languages occupied by the bulletin's
// translation group.
func (r *BulletinRepository) TranslationLanguages(ctx context.Context, bulletin *gormModels.Bulletin) ([]constants.Language, error) {
	languages := []constants.Language{bulletin.Language}

	var translated []constants.Language
	err := r.db.WithContext(ctx).
		Model(&gormModels.Bulletin{}).
		Where("original_bulletin_id = ?", bulletin.ID).
		Pluck("language", &translated).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch translation languages: %w", err)
	}
	return append(languages, translated...), nil
}

// MissingTranslations lists published canonical bulletins in the source
// language with no translation in the target language.
func (r *BulletinRepository) MissingTranslations(ctx context.Context, source, target constants.Language) ([]gormModels.Bulletin, error) {
	var bulletins []gormModels.Bulletin

	err := r.db.WithContext(ctx).
		Where("language = ? AND status = ? AND original_bulletin_id IS NULL", source, constants.StatusPublished).
		Where("id NOT IN (?)", r.db.Model(&gormModels.Bulletin{}).
			Select("original_bulletin_id").
			Where("original_bulletin_id IS NOT NULL AND language = ?", target)).
		Order("created_at DESC").
		Find(&bulletins).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list untranslated bulletins: %w", err)
	}
	return bulletins, nil
}
