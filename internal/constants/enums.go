package constants

import (
	"database/sql/driver"
	"fmt"
)

// UserType mirrors the Postgres ENUM 'user_type'
type UserType string

const (
	UserTypeStaff UserType = "STAFF"
	UserTypeRadio UserType = "RADIO"
)

func (t UserType) String() string { return string(t) }

// StaffRole mirrors the Postgres ENUM 'staff_role'. Only set for STAFF users.
type StaffRole string

const (
	RoleSuperAdmin StaffRole = "SUPERADMIN"
	RoleAdmin      StaffRole = "ADMIN"
	RoleEditor     StaffRole = "EDITOR"
	RoleSubEditor  StaffRole = "SUB_EDITOR"
	RoleJournalist StaffRole = "JOURNALIST"
	RoleIntern     StaffRole = "INTERN"
)

func (r StaffRole) String() string { return string(r) }

// Language mirrors the Postgres ENUM 'content_language'
type Language string

const (
	LanguageEnglish   Language = "EN"
	LanguageAfrikaans Language = "AF"
	LanguageXhosa     Language = "XH"
)

// Languages lists every supported content language.
var Languages = []Language{LanguageEnglish, LanguageAfrikaans, LanguageXhosa}

func (l Language) String() string { return string(l) }

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// ContentStatus mirrors the Postgres ENUM 'content_status' shared by
// stories, bulletins and shows.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "DRAFT"
	StatusReview    ContentStatus = "REVIEW"
	StatusApproved  ContentStatus = "APPROVED"
	StatusPublished ContentStatus = "PUBLISHED"
	StatusArchived  ContentStatus = "ARCHIVED"
)

func (s ContentStatus) String() string { return string(s) }

// ReligionAccess mirrors the Postgres ENUM 'religion_access'
type ReligionAccess string

const (
	ReligionGeneralOnly ReligionAccess = "GENERAL_ONLY"
	ReligionChristian   ReligionAccess = "GENERAL_PLUS_CHRISTIAN"
	ReligionMuslim      ReligionAccess = "GENERAL_PLUS_MUSLIM"
)

func (r ReligionAccess) String() string { return string(r) }

// Province mirrors the Postgres ENUM 'province'
type Province string

const (
	ProvinceEasternCape  Province = "EASTERN_CAPE"
	ProvinceFreeState    Province = "FREE_STATE"
	ProvinceGauteng      Province = "GAUTENG"
	ProvinceKwaZuluNatal Province = "KWAZULU_NATAL"
	ProvinceLimpopo      Province = "LIMPOPO"
	ProvinceMpumalanga   Province = "MPUMALANGA"
	ProvinceNorthernCape Province = "NORTHERN_CAPE"
	ProvinceNorthWest    Province = "NORTH_WEST"
	ProvinceWesternCape  Province = "WESTERN_CAPE"
	ProvinceNational     Province = "NATIONAL"
)

func (p Province) String() string { return string(p) }

// TaskType mirrors the Postgres ENUM 'task_type'
type TaskType string

const (
	TaskStoryCreate    TaskType = "STORY_CREATE"
	TaskStoryEdit      TaskType = "STORY_EDIT"
	TaskStoryTranslate TaskType = "STORY_TRANSLATE"
	TaskBulletinCreate TaskType = "BULLETIN_CREATE"
	TaskShowCreate     TaskType = "SHOW_CREATE"
	TaskFollowUp       TaskType = "FOLLOW_UP"
	TaskOther          TaskType = "OTHER"
)

func (t TaskType) String() string { return string(t) }

// TaskStatus mirrors the Postgres ENUM 'task_status'
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

func (s TaskStatus) String() string { return string(s) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

func scanString(dst *string, src interface{}, typeName string) error {
	if src == nil {
		*dst = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*dst = v
	case []byte:
		*dst = string(v)
	default:
		return fmt.Errorf("%s: cannot scan type %T", typeName, src)
	}
	return nil
}

func (t *UserType) Scan(src interface{}) error {
	return scanString((*string)(t), src, "UserType")
}
func (t UserType) Value() (driver.Value, error) { return string(t), nil }

func (r *StaffRole) Scan(src interface{}) error {
	return scanString((*string)(r), src, "StaffRole")
}
func (r StaffRole) Value() (driver.Value, error) { return string(r), nil }

func (l *Language) Scan(src interface{}) error {
	return scanString((*string)(l), src, "Language")
}
func (l Language) Value() (driver.Value, error) { return string(l), nil }

func (s *ContentStatus) Scan(src interface{}) error {
	return scanString((*string)(s), src, "ContentStatus")
}
func (s ContentStatus) Value() (driver.Value, error) { return string(s), nil }

func (r *ReligionAccess) Scan(src interface{}) error {
	return scanString((*string)(r), src, "ReligionAccess")
}
func (r ReligionAccess) Value() (driver.Value, error) { return string(r), nil }

func (p *Province) Scan(src interface{}) error {
	return scanString((*string)(p), src, "Province")
}
func (p Province) Value() (driver.Value, error) { return string(p), nil }

func (t *TaskType) Scan(src interface{}) error {
	return scanString((*string)(t), src, "TaskType")
}
func (t TaskType) Value() (driver.Value, error) { return string(t), nil }

func (s *TaskStatus) Scan(src interface{}) error {
	return scanString((*string)(s), src, "TaskStatus")
}
func (s TaskStatus) Value() (driver.Value, error) { return string(s), nil }
