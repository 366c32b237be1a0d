package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
)

// Show is a pre-recorded programme referencing an externally stored audio file.
type Show struct {
	ID          string                  `gorm:"column:id;primaryKey;type:uuid"`
	Title       string                  `gorm:"column:title"`
	Description string                  `gorm:"column:description"`
	CreatorID   string                  `gorm:"column:creator_id;type:uuid"`
	AudioFile   string                  `gorm:"column:audio_file"`
	Duration    *int                    `gorm:"column:duration"`
	Status      constants.ContentStatus `gorm:"column:status;type:content_status;default:DRAFT"`
	Language    constants.Language      `gorm:"column:language;type:content_language;default:EN"`

	PublishedAt *time.Time `gorm:"column:published_at"`

	// For translated shows, link to the canonical original
	OriginalShowID *string `gorm:"column:original_show_id;type:uuid"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Creator      *User      `gorm:"foreignKey:CreatorID"`
	Categories   []Category `gorm:"many2many:show_categories"`
	OriginalShow *Show      `gorm:"foreignKey:OriginalShowID"`
	Translations []Show     `gorm:"foreignKey:OriginalShowID"`
}

// TableName specifies the table name for GORM
func (Show) TableName() string {
	return "shows"
}

func (s *Show) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
