package requests

import "newskoop/newsroom/internal/constants"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type ProfileUpdateRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
}

type StaffUserCreateRequest struct {
	Email        string              `json:"email" validate:"required,email"`
	Password     string              `json:"password" validate:"required,min=8"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	MobileNumber string              `json:"mobile_number"`
	StaffRole    constants.StaffRole `json:"staff_role" validate:"required,oneof=SUPERADMIN ADMIN EDITOR SUB_EDITOR JOURNALIST INTERN"`
	IsActive     bool                `json:"is_active"`
}

type StaffUserUpdateRequest struct {
	FirstName    *string              `json:"first_name"`
	LastName     *string              `json:"last_name"`
	MobileNumber *string              `json:"mobile_number"`
	StaffRole    *constants.StaffRole `json:"staff_role" validate:"omitempty,oneof=SUPERADMIN ADMIN EDITOR SUB_EDITOR JOURNALIST INTERN"`
	IsActive     *bool                `json:"is_active"`
}

type RadioUserCreateRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	MobileNumber     string `json:"mobile_number"`
	RadioStationID   string `json:"radio_station" validate:"required,uuid"`
	IsPrimaryContact bool   `json:"is_primary_contact"`
	IsActive         bool   `json:"is_active"`
}

type RadioUserUpdateRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	MobileNumber *string `json:"mobile_number"`
	IsActive     *bool   `json:"is_active"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// PrimaryContactDetails optionally rides along on station creation; when the
// email is set a RADIO user is created as the station's primary contact in
// the same transaction.
type PrimaryContactDetails struct {
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
}

type StationCreateRequest struct {
	Name           string                   `json:"name" validate:"required"`
	Description    string                   `json:"description"`
	Province       constants.Province       `json:"province" validate:"required"`
	ContactNumber  string                   `json:"contact_number"`
	ContactEmail   string                   `json:"contact_email" validate:"omitempty,email"`
	Website        string                   `json:"website" validate:"omitempty,url"`
	IsActive       bool                     `json:"is_active"`
	ReligionAccess constants.ReligionAccess `json:"religion_access" validate:"omitempty,oneof=GENERAL_ONLY GENERAL_PLUS_CHRISTIAN GENERAL_PLUS_MUSLIM"`

	AccessEnglish   bool `json:"access_english"`
	AccessAfrikaans bool `json:"access_afrikaans"`
	AccessXhosa     bool `json:"access_xhosa"`

	AccessNewsStories   bool `json:"access_news_stories"`
	AccessNewsBulletins bool `json:"access_news_bulletins"`
	AccessSport         bool `json:"access_sport"`
	AccessFinance       bool `json:"access_finance"`
	AccessSpecialty     bool `json:"access_specialty"`

	PrimaryContact *PrimaryContactDetails `json:"primary_contact"`
}

type StationUpdateRequest struct {
	Name           string                   `json:"name" validate:"required"`
	Description    string                   `json:"description"`
	Province       constants.Province       `json:"province" validate:"required"`
	ContactNumber  string                   `json:"contact_number"`
	ContactEmail   string                   `json:"contact_email" validate:"omitempty,email"`
	Website        string                   `json:"website" validate:"omitempty,url"`
	IsActive       bool                     `json:"is_active"`
	ReligionAccess constants.ReligionAccess `json:"religion_access" validate:"omitempty,oneof=GENERAL_ONLY GENERAL_PLUS_CHRISTIAN GENERAL_PLUS_MUSLIM"`

	AccessEnglish   bool `json:"access_english"`
	AccessAfrikaans bool `json:"access_afrikaans"`
	AccessXhosa     bool `json:"access_xhosa"`

	AccessNewsStories   bool `json:"access_news_stories"`
	AccessNewsBulletins bool `json:"access_news_bulletins"`
	AccessSport         bool `json:"access_sport"`
	AccessFinance       bool `json:"access_finance"`
	AccessSpecialty     bool `json:"access_specialty"`
}

type SetPrimaryContactRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}
