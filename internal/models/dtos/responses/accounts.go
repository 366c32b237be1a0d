package responses

import (
	"time"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

// UserResponse is the public view of a user; the password hash never leaves
// the service boundary.
type UserResponse struct {
	ID               string              `json:"id"`
	Email            string              `json:"email"`
	FirstName        string              `json:"first_name"`
	LastName         string              `json:"last_name"`
	MobileNumber     string              `json:"mobile_number"`
	IsActive         bool                `json:"is_active"`
	UserType         constants.UserType  `json:"user_type"`
	StaffRole        *constants.StaffRole `json:"staff_role,omitempty"`
	RadioStationID   *string             `json:"radio_station_id,omitempty"`
	IsPrimaryContact bool                `json:"is_primary_contact"`
	CreatedAt        time.Time           `json:"created_at"`
}

func NewUserResponse(u *gormModels.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		MobileNumber:     u.MobileNumber,
		IsActive:         u.IsActive,
		UserType:         u.UserType,
		StaffRole:        u.StaffRole,
		RadioStationID:   u.RadioStationID,
		IsPrimaryContact: u.IsPrimaryContact,
		CreatedAt:        u.CreatedAt,
	}
}

func NewUserResponses(users []gormModels.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// LoginResponse carries the authenticated user plus the token pair.
type LoginResponse struct {
	User    UserResponse `json:"user"`
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
}

// TokenRefreshResponse carries a freshly minted access token.
type TokenRefreshResponse struct {
	Access string `json:"access"`
}

// StationResponse is the public view of a radio station.
type StationResponse struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description"`
	Province       constants.Province       `json:"province"`
	ContactNumber  string                   `json:"contact_number"`
	ContactEmail   string                   `json:"contact_email"`
	Website        string                   `json:"website"`
	IsActive       bool                     `json:"is_active"`
	ReligionAccess constants.ReligionAccess `json:"religion_access"`

	AccessEnglish   bool `json:"access_english"`
	AccessAfrikaans bool `json:"access_afrikaans"`
	AccessXhosa     bool `json:"access_xhosa"`

	AccessNewsStories   bool `json:"access_news_stories"`
	AccessNewsBulletins bool `json:"access_news_bulletins"`
	AccessSport         bool `json:"access_sport"`
	AccessFinance       bool `json:"access_finance"`
	AccessSpecialty     bool `json:"access_specialty"`

	PrimaryContact *UserResponse `json:"primary_contact,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewStationResponse(s *gormModels.RadioStation) StationResponse {
	return StationResponse{
		ID:                  s.ID,
		Name:                s.Name,
		Description:         s.Description,
		Province:            s.Province,
		ContactNumber:       s.ContactNumber,
		ContactEmail:        s.ContactEmail,
		Website:             s.Website,
		IsActive:            s.IsActive,
		ReligionAccess:      s.ReligionAccess,
		AccessEnglish:       s.AccessEnglish,
		AccessAfrikaans:     s.AccessAfrikaans,
		AccessXhosa:         s.AccessXhosa,
		AccessNewsStories:   s.AccessNewsStories,
		AccessNewsBulletins: s.AccessNewsBulletins,
		AccessSport:         s.AccessSport,
		AccessFinance:       s.AccessFinance,
		AccessSpecialty:     s.AccessSpecialty,
		CreatedAt:           s.CreatedAt,
	}
}

// NewStationDetailResponse attaches the primary contact when one is set.
func NewStationDetailResponse(s *gormModels.RadioStation, contact *gormModels.User) StationResponse {
	resp := NewStationResponse(s)
	if contact != nil {
		c := NewUserResponse(contact)
		resp.PrimaryContact = &c
	}
	return resp
}

func NewStationResponses(stations []gormModels.RadioStation) []StationResponse {
	out := make([]StationResponse, 0, len(stations))
	for i := range stations {
		out = append(out, NewStationResponse(&stations[i]))
	}
	return out
}
