package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
)

type Story struct {
	ID       string                  `gorm:"column:id;primaryKey;type:uuid"`
	Title    string                  `gorm:"column:title"`
	AuthorID string                  `gorm:"column:author_id;type:uuid"`
	Status   constants.ContentStatus `gorm:"column:status;type:content_status;default:DRAFT"`
	Language constants.Language      `gorm:"column:language;type:content_language;default:EN"`

	PublishedAt *time.Time `gorm:"column:published_at"`

	// For translated stories, link to the canonical original
	OriginalStoryID *string `gorm:"column:original_story_id;type:uuid"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Author        *User         `gorm:"foreignKey:AuthorID"`
	Categories    []Category    `gorm:"many2many:story_categories"`
	Content       *StoryContent `gorm:"foreignKey:StoryID"`
	AudioClips    []AudioClip   `gorm:"foreignKey:StoryID"`
	OriginalStory *Story        `gorm:"foreignKey:OriginalStoryID"`
	Translations  []Story       `gorm:"foreignKey:OriginalStoryID"`
}

// TableName specifies the table name for GORM
func (Story) TableName() string {
	return "stories"
}

func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type StoryContent struct {
	ID      string `gorm:"column:id;primaryKey;type:uuid"`
	StoryID string `gorm:"column:story_id;type:uuid;uniqueIndex"`
	Content string `gorm:"column:content"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (StoryContent) TableName() string {
	return "story_contents"
}

func (c *StoryContent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// AudioClip references an externally stored audio file attached to a story.
type AudioClip struct {
	ID          string `gorm:"column:id;primaryKey;type:uuid"`
	StoryID     string `gorm:"column:story_id;type:uuid"`
	Title       string `gorm:"column:title"`
	Description string `gorm:"column:description"`
	FilePath    string `gorm:"column:file_path"`
	Duration    *int   `gorm:"column:duration"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AudioClip) TableName() string {
	return "audio_clips"
}

func (a *AudioClip) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
