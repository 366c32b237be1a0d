package responses

import (
	"time"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id,omitempty"`

	IsNewsStory    bool `json:"is_news_story"`
	IsNewsBulletin bool `json:"is_news_bulletin"`
	IsSport        bool `json:"is_sport"`
	IsFinance      bool `json:"is_finance"`
	IsSpecialty    bool `json:"is_specialty"`

	Children []CategoryResponse `json:"children,omitempty"`
}

func NewCategoryResponse(c *gormModels.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Slug:           c.Slug,
		Description:    c.Description,
		ParentID:       c.ParentID,
		IsNewsStory:    c.IsNewsStory,
		IsNewsBulletin: c.IsNewsBulletin,
		IsSport:        c.IsSport,
		IsFinance:      c.IsFinance,
		IsSpecialty:    c.IsSpecialty,
	}
	for i := range c.Children {
		resp.Children = append(resp.Children, NewCategoryResponse(&c.Children[i]))
	}
	return resp
}

type AudioClipResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FilePath    string    `json:"file_path"`
	Duration    *int      `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type StoryResponse struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	AuthorID        string                  `json:"author_id"`
	Status          constants.ContentStatus `json:"status"`
	Language        constants.Language      `json:"language"`
	PublishedAt     *time.Time              `json:"published_at,omitempty"`
	OriginalStoryID *string                 `json:"original_story_id,omitempty"`
	Content         string                  `json:"content"`
	Categories      []CategoryResponse      `json:"categories,omitempty"`
	AudioClips      []AudioClipResponse     `json:"audio_clips,omitempty"`
	Translations    []StoryResponse         `json:"translations,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func NewStoryResponse(s *gormModels.Story) StoryResponse {
	resp := StoryResponse{
		ID:              s.ID,
		Title:           s.Title,
		AuthorID:        s.AuthorID,
		Status:          s.Status,
		Language:        s.Language,
		PublishedAt:     s.PublishedAt,
		OriginalStoryID: s.OriginalStoryID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.Content != nil {
		resp.Content = s.Content.Content
	}
	for i := range s.Categories {
		resp.Categories = append(resp.Categories, NewCategoryResponse(&s.Categories[i]))
	}
	for _, clip := range s.AudioClips {
		resp.AudioClips = append(resp.AudioClips, AudioClipResponse{
			ID:          clip.ID,
			Title:       clip.Title,
			Description: clip.Description,
			FilePath:    clip.FilePath,
			Duration:    clip.Duration,
			CreatedAt:   clip.CreatedAt,
		})
	}
	for i := range s.Translations {
		resp.Translations = append(resp.Translations, NewStoryResponse(&s.Translations[i]))
	}
	return resp
}

func NewStoryResponses(stories []gormModels.Story) []StoryResponse {
	out := make([]StoryResponse, 0, len(stories))
	for i := range stories {
		out = append(out, NewStoryResponse(&stories[i]))
	}
	return out
}

type BulletinStoryResponse struct {
	StoryID string `json:"story_id"`
	Order   int    `json:"order"`
	Title   string `json:"title,omitempty"`
}

type BulletinResponse struct {
	ID                 string                  `json:"id"`
	Title              string                  `json:"title"`
	EditorID           string                  `json:"editor_id"`
	Intro              string                  `json:"intro"`
	Outro              string                  `json:"outro"`
	Status             constants.ContentStatus `json:"status"`
	Language           constants.Language      `json:"language"`
	PublishedAt        *time.Time              `json:"published_at,omitempty"`
	OriginalBulletinID *string                 `json:"original_bulletin_id,omitempty"`
	Categories         []CategoryResponse      `json:"categories,omitempty"`
	Stories            []BulletinStoryResponse `json:"stories,omitempty"`
	SkippedStoryIDs    []string                `json:"skipped_story_ids,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

func NewBulletinResponse(b *gormModels.Bulletin) BulletinResponse {
	resp := BulletinResponse{
		ID:                 b.ID,
		Title:              b.Title,
		EditorID:           b.EditorID,
		Intro:              b.Intro,
		Outro:              b.Outro,
		Status:             b.Status,
		Language:           b.Language,
		PublishedAt:        b.PublishedAt,
		OriginalBulletinID: b.OriginalBulletinID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	for i := range b.Categories {
		resp.Categories = append(resp.Categories, NewCategoryResponse(&b.Categories[i]))
	}
	for _, bs := range b.BulletinStories {
		entry := BulletinStoryResponse{StoryID: bs.StoryID, Order: bs.Order}
		if bs.Story != nil {
			entry.Title = bs.Story.Title
		}
		resp.Stories = append(resp.Stories, entry)
	}
	return resp
}

func NewBulletinResponses(bulletins []gormModels.Bulletin) []BulletinResponse {
	out := make([]BulletinResponse, 0, len(bulletins))
	for i := range bulletins {
		out = append(out, NewBulletinResponse(&bulletins[i]))
	}
	return out
}

type ShowResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	CreatorID      string                  `json:"creator_id"`
	AudioFile      string                  `json:"audio_file"`
	Duration       *int                    `json:"duration,omitempty"`
	Status         constants.ContentStatus `json:"status"`
	Language       constants.Language      `json:"language"`
	PublishedAt    *time.Time              `json:"published_at,omitempty"`
	OriginalShowID *string                 `json:"original_show_id,omitempty"`
	Categories     []CategoryResponse      `json:"categories,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

func NewShowResponse(s *gormModels.Show) ShowResponse {
	resp := ShowResponse{
		ID:             s.ID,
		Title:          s.Title,
		Description:    s.Description,
		CreatorID:      s.CreatorID,
		AudioFile:      s.AudioFile,
		Duration:       s.Duration,
		Status:         s.Status,
		Language:       s.Language,
		PublishedAt:    s.PublishedAt,
		OriginalShowID: s.OriginalShowID,
		CreatedAt:      s.CreatedAt,
	}
	for i := range s.Categories {
		resp.Categories = append(resp.Categories, NewCategoryResponse(&s.Categories[i]))
	}
	return resp
}

func NewShowResponses(shows []gormModels.Show) []ShowResponse {
	out := make([]ShowResponse, 0, len(shows))
	for i := range shows {
		out = append(out, NewShowResponse(&shows[i]))
	}
	return out
}

type TaskNoteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskResponse struct {
	ID                string               `json:"id"`
	TaskType          constants.TaskType   `json:"task_type"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	Status            constants.TaskStatus `json:"status"`
	AssignedByID      string               `json:"assigned_by_id"`
	AssignedToID      string               `json:"assigned_to_id"`
	DueDate           *time.Time           `json:"due_date,omitempty"`
	RelatedStoryID    *string              `json:"related_story_id,omitempty"`
	RelatedBulletinID *string              `json:"related_bulletin_id,omitempty"`
	CompletedAt       *time.Time           `json:"completed_at,omitempty"`
	Notes             []TaskNoteResponse   `json:"notes,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

func NewTaskResponse(t *gormModels.Task) TaskResponse {
	resp := TaskResponse{
		ID:                t.ID,
		TaskType:          t.TaskType,
		Title:             t.Title,
		Description:       t.Description,
		Status:            t.Status,
		AssignedByID:      t.AssignedByID,
		AssignedToID:      t.AssignedToID,
		DueDate:           t.DueDate,
		RelatedStoryID:    t.RelatedStoryID,
		RelatedBulletinID: t.RelatedBulletinID,
		CompletedAt:       t.CompletedAt,
		CreatedAt:         t.CreatedAt,
	}
	for _, n := range t.Notes {
		resp.Notes = append(resp.Notes, TaskNoteResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
		})
	}
	return resp
}

func NewTaskResponses(tasks []gormModels.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}

// DashboardResponse carries the newsroom landing page counts.
type DashboardResponse struct {
	Stories   map[string]int64 `json:"stories"`
	Bulletins map[string]int64 `json:"bulletins"`
	Shows     map[string]int64 `json:"shows"`
	OpenTasks int64            `json:"open_tasks"`
}

// TranslationDashboardResponse lists published English content missing
// translations plus the active translation tasks.
type TranslationDashboardResponse struct {
	StoriesNeedingAfrikaans   []StoryResponse    `json:"stories_needing_afrikaans"`
	StoriesNeedingXhosa       []StoryResponse    `json:"stories_needing_xhosa"`
	BulletinsNeedingAfrikaans []BulletinResponse `json:"bulletins_needing_afrikaans"`
	BulletinsNeedingXhosa     []BulletinResponse `json:"bulletins_needing_xhosa"`
	ActiveTasks               []TaskResponse     `json:"active_tasks"`
}
