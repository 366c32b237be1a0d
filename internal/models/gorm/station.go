package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
)

type RadioStation struct {
	ID            string                   `gorm:"column:id;primaryKey;type:uuid"`
	Name          string                   `gorm:"column:name"`
	Description   string                   `gorm:"column:description"`
	Province      constants.Province       `gorm:"column:province;type:province"`
	ContactNumber string                   `gorm:"column:contact_number"`
	ContactEmail  string                   `gorm:"column:contact_email"`
	Website       string                   `gorm:"column:website"`
	IsActive      bool                     `gorm:"column:is_active;default:true"`
	ReligionAccess constants.ReligionAccess `gorm:"column:religion_access;type:religion_access"`

	// Language access
	AccessEnglish   bool `gorm:"column:access_english;default:true"`
	AccessAfrikaans bool `gorm:"column:access_afrikaans;default:false"`
	AccessXhosa     bool `gorm:"column:access_xhosa;default:false"`

	// Content category access
	AccessNewsStories   bool `gorm:"column:access_news_stories;default:false"`
	AccessNewsBulletins bool `gorm:"column:access_news_bulletins;default:false"`
	AccessSport         bool `gorm:"column:access_sport;default:false"`
	AccessFinance       bool `gorm:"column:access_finance;default:false"`
	AccessSpecialty     bool `gorm:"column:access_specialty;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Users []User `gorm:"foreignKey:RadioStationID"`
}

// TableName specifies the table name for GORM
func (RadioStation) TableName() string {
	return "radio_stations"
}

func (s *RadioStation) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
