package requests

import "newskoop/newsroom/internal/constants"

type StoryCreateRequest struct {
	Title       string             `json:"title" validate:"required"`
	Content     string             `json:"content"`
	Language    constants.Language `json:"language" validate:"required,oneof=EN AF XH"`
	CategoryIDs []string           `json:"categories" validate:"dive,uuid"`
}

type StoryUpdateRequest struct {
	Title       string                   `json:"title" validate:"required"`
	Content     string                   `json:"content"`
	Language    constants.Language       `json:"language" validate:"required,oneof=EN AF XH"`
	CategoryIDs []string                 `json:"categories" validate:"dive,uuid"`
	Status      *constants.ContentStatus `json:"status" validate:"omitempty,oneof=DRAFT REVIEW APPROVED PUBLISHED ARCHIVED"`
}

type AudioClipCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	FilePath    string `json:"file_path" validate:"required"`
	Duration    *int   `json:"duration" validate:"omitempty,min=0"`
}

type TranslateRequest struct {
	Language constants.Language `json:"language" validate:"required,oneof=EN AF XH"`
}

type BulletinCreateRequest struct {
	Title       string             `json:"title" validate:"required"`
	Intro       string             `json:"intro" validate:"required"`
	Outro       string             `json:"outro"`
	Language    constants.Language `json:"language" validate:"required,oneof=EN AF XH"`
	CategoryIDs []string           `json:"categories" validate:"dive,uuid"`
	StoryOrder  []string           `json:"story_order" validate:"dive,uuid"`
}

type BulletinUpdateRequest struct {
	Title       string                   `json:"title" validate:"required"`
	Intro       string                   `json:"intro" validate:"required"`
	Outro       string                   `json:"outro"`
	Language    constants.Language       `json:"language" validate:"required,oneof=EN AF XH"`
	CategoryIDs []string                 `json:"categories" validate:"dive,uuid"`
	StoryOrder  []string                 `json:"story_order" validate:"dive,uuid"`
	Status      *constants.ContentStatus `json:"status" validate:"omitempty,oneof=DRAFT REVIEW APPROVED PUBLISHED ARCHIVED"`
}

type ShowCreateRequest struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description" validate:"required"`
	AudioFile   string             `json:"audio_file" validate:"required"`
	Duration    *int               `json:"duration" validate:"omitempty,min=0"`
	Language    constants.Language `json:"language" validate:"required,oneof=EN AF XH"`
	CategoryIDs []string           `json:"categories" validate:"dive,uuid"`
}

type ShowUpdateRequest struct {
	Title       string                   `json:"title" validate:"required"`
	Description string                   `json:"description" validate:"required"`
	AudioFile   string                   `json:"audio_file"`
	Duration    *int                     `json:"duration" validate:"omitempty,min=0"`
	Language    constants.Language       `json:"language" validate:"required,oneof=EN AF XH"`
	CategoryIDs []string                 `json:"categories" validate:"dive,uuid"`
	Status      *constants.ContentStatus `json:"status" validate:"omitempty,oneof=DRAFT REVIEW APPROVED PUBLISHED ARCHIVED"`
}

type CategoryCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent" validate:"omitempty,uuid"`

	IsNewsStory    bool `json:"is_news_story"`
	IsNewsBulletin bool `json:"is_news_bulletin"`
	IsSport        bool `json:"is_sport"`
	IsFinance      bool `json:"is_finance"`
	IsSpecialty    bool `json:"is_specialty"`
}

type CategoryUpdateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent" validate:"omitempty,uuid"`

	IsNewsStory    bool `json:"is_news_story"`
	IsNewsBulletin bool `json:"is_news_bulletin"`
	IsSport        bool `json:"is_sport"`
	IsFinance      bool `json:"is_finance"`
	IsSpecialty    bool `json:"is_specialty"`
}

type TaskCreateRequest struct {
	TaskType          constants.TaskType `json:"task_type" validate:"required,oneof=STORY_CREATE STORY_EDIT STORY_TRANSLATE BULLETIN_CREATE SHOW_CREATE FOLLOW_UP OTHER"`
	Title             string             `json:"title" validate:"required"`
	Description       string             `json:"description" validate:"required"`
	AssignedToID      string             `json:"assigned_to" validate:"required,uuid"`
	DueDate           *string            `json:"due_date"`
	RelatedStoryID    *string            `json:"related_story" validate:"omitempty,uuid"`
	RelatedBulletinID *string            `json:"related_bulletin" validate:"omitempty,uuid"`
}

type TaskStatusUpdateRequest struct {
	Status constants.TaskStatus `json:"status" validate:"required,oneof=TODO IN_PROGRESS REVIEW COMPLETED CANCELLED"`
	Note   string               `json:"note"`
}

type TaskNoteCreateRequest struct {
	Content string `json:"content" validate:"required"`
}

type TranslationTaskCreateRequest struct {
	ContentType  string             `json:"content_type" validate:"required,oneof=story bulletin"`
	ContentID    string             `json:"content_id" validate:"required,uuid"`
	Language     constants.Language `json:"language" validate:"required,oneof=EN AF XH"`
	AssignedToID string             `json:"assigned_to" validate:"required,uuid"`
	DueDate      *string            `json:"due_date"`
}
