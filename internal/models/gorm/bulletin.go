package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
)

type Bulletin struct {
	ID       string                  `gorm:"column:id;primaryKey;type:uuid"`
	Title    string                  `gorm:"column:title"`
	EditorID string                  `gorm:"column:editor_id;type:uuid"`
	Intro    string                  `gorm:"column:intro"`
	Outro    string                  `gorm:"column:outro"`
	Status   constants.ContentStatus `gorm:"column:status;type:content_status;default:DRAFT"`
	Language constants.Language      `gorm:"column:language;type:content_language;default:EN"`

	PublishedAt *time.Time `gorm:"column:published_at"`

	// For translated bulletins, link to the canonical original
	OriginalBulletinID *string `gorm:"column:original_bulletin_id;type:uuid"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Editor           *User           `gorm:"foreignKey:EditorID"`
	Categories       []Category      `gorm:"many2many:bulletin_categories"`
	BulletinStories  []BulletinStory `gorm:"foreignKey:BulletinID"`
	OriginalBulletin *Bulletin       `gorm:"foreignKey:OriginalBulletinID"`
	Translations     []Bulletin      `gorm:"foreignKey:OriginalBulletinID"`
}

// TableName specifies the table name for GORM
func (Bulletin) TableName() string {
	return "bulletins"
}

func (b *Bulletin) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BulletinStory is the ordered join between a bulletin and its stories.
// Order positions are 0-based and unique per (bulletin, story).
type BulletinStory struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	BulletinID string `gorm:"column:bulletin_id;type:uuid;uniqueIndex:idx_bulletin_story"`
	StoryID    string `gorm:"column:story_id;type:uuid;uniqueIndex:idx_bulletin_story"`
	Order      int    `gorm:"column:position"`

	// Relationships
	Story *Story `gorm:"foreignKey:StoryID"`
}

// TableName specifies the table name for GORM
func (BulletinStory) TableName() string {
	return "bulletin_stories"
}
