package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

// StoryRepository handles stories table operations using GORM
type StoryRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new GORM-based story repository
func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// GetByID retrieves a story with content, categories, clips and translations
func (r *StoryRepository) GetByID(ctx context.Context, id string) (*gormModels.Story, error) {
	var story gormModels.Story

	err := r.db.WithContext(ctx).
		Preload("Content").
		Preload("Categories").
		Preload("AudioClips").
		Preload("Translations").
		Where("id = ?", id).
		First(&story).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch story: %w", err)
	}

	return &story, nil
}

// StoryFilter narrows List results.
type StoryFilter struct {
	Status   constants.ContentStatus
	Language constants.Language
	AuthorID string
	Search   string
}

// List retrieves stories matching the filter, newest first
func (r *StoryRepository) List(ctx context.Context, filter StoryFilter) ([]gormModels.Story, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Story{}).Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Language != "" {
		q = q.Where("language = ?", filter.Language)
	}
	if filter.AuthorID != "" {
		q = q.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Search != "" {
		q = q.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	var stories []gormModels.Story
	if err := q.Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

// TranslationLanguages returns the set of languages occupied by the story's
// translation group: the story's own language plus every child translation.
func (r *StoryRepository) TranslationLanguages(ctx context.Context, story *gormModels.Story) ([]constants.Language, error) {
	languages := []constants.Language{story.Language}

	var translated []constants.Language
	err := r.db.WithContext(ctx).
		Model(&gormModels.Story{}).
		Where("original_story_id = ?", story.ID).
		Pluck("language", &translated).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch translation languages: %w", err)
	}
	return append(languages, translated...), nil
}

// MissingTranslations lists published canonical stories in the source
// language that have no translation in the target language.
func (r *StoryRepository) MissingTranslations(ctx context.Context, source, target constants.Language) ([]gormModels.Story, error) {
	var stories []gormModels.Story

	err := r.db.WithContext(ctx).
		Where("language = ? AND status = ? AND original_story_id IS NULL", source, constants.StatusPublished).
		Where("id NOT IN (?)", r.db.Model(&gormModels.Story{}).
			Select("original_story_id").
			Where("original_story_id IS NOT NULL AND language = ?", target)).
		Order("created_at DESC").
		Find(&stories).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list untranslated stories: %w", err)
	}
	return stories, nil
}
