package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string  `gorm:"column:id;primaryKey;type:uuid"`
	Name        string  `gorm:"column:name"`
	Slug        string  `gorm:"column:slug;uniqueIndex"`
	Description string  `gorm:"column:description"`
	ParentID    *string `gorm:"column:parent_id;type:uuid"`

	// Mapping to station access permissions
	IsNewsStory    bool `gorm:"column:is_news_story;default:false"`
	IsNewsBulletin bool `gorm:"column:is_news_bulletin;default:false"`
	IsSport        bool `gorm:"column:is_sport;default:false"`
	IsFinance      bool `gorm:"column:is_finance;default:false"`
	IsSpecialty    bool `gorm:"column:is_specialty;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"foreignKey:ParentID"`
}

// TableName specifies the table name for GORM
func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// FullPath returns the category path (parent > child > ...). The parent
// chain must be preloaded.
func (c *Category) FullPath() string {
	if c.Parent != nil {
		return c.Parent.FullPath() + " > " + c.Name
	}
	return c.Name
}
