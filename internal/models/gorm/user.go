package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
)

type User struct {
	ID           string             `gorm:"column:id;primaryKey;type:uuid"`
	Email        string             `gorm:"column:email;uniqueIndex"`
	PasswordHash string             `gorm:"column:password_hash"`
	FirstName    string             `gorm:"column:first_name"`
	LastName     string             `gorm:"column:last_name"`
	MobileNumber string             `gorm:"column:mobile_number"`
	IsActive     bool               `gorm:"column:is_active;default:true"`
	UserType     constants.UserType `gorm:"column:user_type;type:user_type"`

	// Staff role, only applicable for STAFF users
	StaffRole *constants.StaffRole `gorm:"column:staff_role;type:staff_role"`

	// Radio station, only applicable for RADIO users
	RadioStationID   *string `gorm:"column:radio_station_id;type:uuid"`
	IsPrimaryContact bool    `gorm:"column:is_primary_contact;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	RadioStation *RadioStation `gorm:"foreignKey:RadioStationID"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// FullName returns the display name, falling back to the email address.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// Role returns the staff role, or the empty role for RADIO users.
func (u *User) Role() constants.StaffRole {
	if u.StaffRole == nil {
		return ""
	}
	return *u.StaffRole
}
