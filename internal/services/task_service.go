package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/metrics"
	"newskoop/newsroom/internal/models/dtos/requests"
	gormModels "newskoop/newsroom/internal/models/gorm"
	"newskoop/newsroom/internal/permissions"
)

// TaskService manages newsroom work assignments and their note trail.
type TaskService struct {
	db           *gorm.DB
	taskRepo     *repositories.TaskRepository
	userRepo     *repositories.UserRepository
	storyRepo    *repositories.StoryRepository
	bulletinRepo *repositories.BulletinRepository
}

// NewTaskService creates a new task service
func NewTaskService(db *gorm.DB, taskRepo *repositories.TaskRepository, userRepo *repositories.UserRepository, storyRepo *repositories.StoryRepository, bulletinRepo *repositories.BulletinRepository) *TaskService {
	return &TaskService{db: db, taskRepo: taskRepo, userRepo: userRepo, storyRepo: storyRepo, bulletinRepo: bulletinRepo}
}

// GetByID fetches a task if the actor is allowed to see it: editors and
// above, the assignee, or the assigner.
func (svc *TaskService) GetByID(ctx context.Context, actor *gormModels.User, id string) (*gormModels.Task, error) {
	task, err := svc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if !permissions.Can(actor, permissions.ActionTaskView, task) {
		return nil, ErrPermissionDenied
	}
	return task, nil
}

// List retrieves tasks matching the filter. Editors and above see all
// tasks; everyone else is narrowed to tasks they assigned or were assigned.
func (svc *TaskService) List(ctx context.Context, actor *gormModels.User, filter repositories.TaskFilter) ([]gormModels.Task, error) {
	if !permissions.IsStaff(actor) {
		return nil, ErrPermissionDenied
	}

	if permissions.IsEditorOrAbove(actor) {
		return svc.taskRepo.List(ctx, filter)
	}

	tasks, err := svc.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	visible := tasks[:0]
	for _, t := range tasks {
		if t.AssignedToID == actor.ID || t.AssignedByID == actor.ID {
			visible = append(visible, t)
		}
	}
	return visible, nil
}

// MyTasks retrieves the actor's open assignments, due first.
func (svc *TaskService) MyTasks(ctx context.Context, actor *gormModels.User) ([]gormModels.Task, error) {
	if !permissions.IsStaff(actor) {
		return nil, ErrPermissionDenied
	}
	return svc.taskRepo.List(ctx, repositories.TaskFilter{AssignedToID: actor.ID})
}

// Create creates a task with the actor as assigner. The assignee must be an
// active staff member. Unresolvable related content IDs are dropped rather
// than failing the request. Sub-editor and above.
func (svc *TaskService) Create(ctx context.Context, actor *gormModels.User, req *requests.TaskCreateRequest) (*gormModels.Task, error) {
	if !permissions.Can(actor, permissions.ActionTaskCreate, nil) {
		return nil, ErrPermissionDenied
	}

	assignee, err := svc.userRepo.GetByID(ctx, req.AssignedToID)
	if err != nil {
		return nil, err
	}
	if assignee == nil || !permissions.IsStaff(assignee) {
		return nil, NewValidationError("assigned_to", "assignee must be an active staff member")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &gormModels.Task{
		TaskType:          req.TaskType,
		Title:             req.Title,
		Description:       req.Description,
		Status:            constants.TaskTodo,
		AssignedByID:      actor.ID,
		AssignedToID:      assignee.ID,
		DueDate:           dueDate,
		RelatedStoryID:    svc.resolveStoryRef(ctx, req.RelatedStoryID),
		RelatedBulletinID: svc.resolveBulletinRef(ctx, req.RelatedBulletinID),
	}

	if err := svc.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	metrics.TasksCreated.WithLabelValues(string(task.TaskType)).Inc()
	logging.Info("task created",
		"task", task.ID, "type", task.TaskType,
		"assigned_to", task.AssignedToID, "actor", actor.ID)
	return svc.taskRepo.GetByID(ctx, task.ID)
}

// CreateTranslationTask creates a STORY_TRANSLATE task tied to a story or
// bulletin, after checking the translation group does not already hold the
// target language. Sub-editor and above.
func (svc *TaskService) CreateTranslationTask(ctx context.Context, actor *gormModels.User, req *requests.TranslationTaskCreateRequest) (*gormModels.Task, error) {
	if !permissions.Can(actor, permissions.ActionTaskCreate, nil) {
		return nil, ErrPermissionDenied
	}

	assignee, err := svc.userRepo.GetByID(ctx, req.AssignedToID)
	if err != nil {
		return nil, err
	}
	if assignee == nil || !permissions.IsStaff(assignee) {
		return nil, NewValidationError("assigned_to", "assignee must be an active staff member")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &gormModels.Task{
		TaskType:     constants.TaskStoryTranslate,
		Status:       constants.TaskTodo,
		AssignedByID: actor.ID,
		AssignedToID: assignee.ID,
		DueDate:      dueDate,
	}

	switch req.ContentType {
	case "story":
		story, err := svc.storyRepo.GetByID(ctx, req.ContentID)
		if err != nil {
			return nil, err
		}
		if story == nil {
			return nil, ErrNotFound
		}
		taken, err := svc.storyRepo.TranslationLanguages(ctx, story)
		if err != nil {
			return nil, err
		}
		for _, l := range taken {
			if l == req.Language {
				return nil, ErrDuplicateTranslation
			}
		}
		task.Title = fmt.Sprintf("Translate story to %s: %s", req.Language, story.Title)
		task.Description = fmt.Sprintf("Translate the story %q into %s.", story.Title, req.Language)
		task.RelatedStoryID = &story.ID
	case "bulletin":
		bulletin, err := svc.bulletinRepo.GetByID(ctx, req.ContentID)
		if err != nil {
			return nil, err
		}
		if bulletin == nil {
			return nil, ErrNotFound
		}
		taken, err := svc.bulletinRepo.TranslationLanguages(ctx, bulletin)
		if err != nil {
			return nil, err
		}
		for _, l := range taken {
			if l == req.Language {
				return nil, ErrDuplicateTranslation
			}
		}
		task.Title = fmt.Sprintf("Translate bulletin to %s: %s", req.Language, bulletin.Title)
		task.Description = fmt.Sprintf("Translate the bulletin %q into %s.", bulletin.Title, req.Language)
		task.RelatedBulletinID = &bulletin.ID
	default:
		return nil, NewValidationError("content_type", "content type must be story or bulletin")
	}

	if err := svc.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("failed to create translation task: %w", err)
	}

	metrics.TasksCreated.WithLabelValues(string(task.TaskType)).Inc()
	logging.Info("translation task created",
		"task", task.ID, "content_type", req.ContentType,
		"content", req.ContentID, "language", req.Language, "actor", actor.ID)
	return svc.taskRepo.GetByID(ctx, task.ID)
}

// UpdateStatus moves a task to a new status. Editors and above or the
// assignee. Completing a task stamps completed_at; leaving COMPLETED clears
// it. An optional note is recorded with the change in the same transaction.
func (svc *TaskService) UpdateStatus(ctx context.Context, actor *gormModels.User, id string, req *requests.TaskStatusUpdateRequest) (*gormModels.Task, error) {
	task, err := svc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if !permissions.Can(actor, permissions.ActionTaskUpdateStatus, task) {
		return nil, ErrPermissionDenied
	}

	task.Status = req.Status
	if req.Status == constants.TaskCompleted {
		now := time.Now().UTC()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if req.Note != "" {
			note := &gormModels.TaskNote{TaskID: task.ID, UserID: actor.ID, Content: req.Note}
			if err := tx.Create(note).Error; err != nil {
				return fmt.Errorf("failed to record note: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if task.Status == constants.TaskCompleted {
		metrics.TasksCompleted.WithLabelValues(task.TaskType.String()).Inc()
	}
	logging.Info("task status updated",
		"task", task.ID, "status", task.Status, "actor", actor.ID)
	return svc.taskRepo.GetByID(ctx, task.ID)
}

// AddNote appends a note to a task. Editors and above, the assignee or the
// assigner.
func (svc *TaskService) AddNote(ctx context.Context, actor *gormModels.User, id string, req *requests.TaskNoteCreateRequest) (*gormModels.TaskNote, error) {
	task, err := svc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	if !permissions.Can(actor, permissions.ActionTaskAddNote, task) {
		return nil, ErrPermissionDenied
	}

	note := &gormModels.TaskNote{TaskID: task.ID, UserID: actor.ID, Content: req.Content}
	if err := svc.db.WithContext(ctx).Create(note).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// resolveStoryRef returns the ID if the story exists, nil otherwise.
func (svc *TaskService) resolveStoryRef(ctx context.Context, id *string) *string {
	if id == nil {
		return nil
	}
	story, err := svc.storyRepo.GetByID(ctx, *id)
	if err != nil || story == nil {
		logging.Warn("related story dropped from task", "story", *id)
		return nil
	}
	return &story.ID
}

// resolveBulletinRef returns the ID if the bulletin exists, nil otherwise.
func (svc *TaskService) resolveBulletinRef(ctx context.Context, id *string) *string {
	if id == nil {
		return nil
	}
	bulletin, err := svc.bulletinRepo.GetByID(ctx, *id)
	if err != nil || bulletin == nil {
		logging.Warn("related bulletin dropped from task", "bulletin", *id)
		return nil
	}
	return &bulletin.ID
}

// parseDueDate accepts RFC 3339 timestamps or plain dates.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, NewValidationError("due_date", "due date must be an RFC 3339 timestamp or YYYY-MM-DD")
	}
	return &t, nil
}
