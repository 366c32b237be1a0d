package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

// TaskRepository handles tasks table operations using GORM
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new GORM-based task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// GetByID retrieves a task with its notes, newest note first
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*gormModels.Task, error) {
	var task gormModels.Task

	err := r.db.WithContext(ctx).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&task).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	return &task, nil
}

// TaskFilter narrows List results.
type TaskFilter struct {
	Status       constants.TaskStatus
	TaskType     constants.TaskType
	AssignedToID string
	AssignedByID string
}

// List retrieves tasks matching the filter, newest first
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]gormModels.Task, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Task{}).Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.TaskType != "" {
		q = q.Where("task_type = ?", filter.TaskType)
	}
	if filter.AssignedToID != "" {
		q = q.Where("assigned_to_id = ?", filter.AssignedToID)
	}
	if filter.AssignedByID != "" {
		q = q.Where("assigned_by_id = ?", filter.AssignedByID)
	}

	var tasks []gormModels.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListActiveTranslationTasks retrieves open translation tasks ordered by due date
func (r *TaskRepository) ListActiveTranslationTasks(ctx context.Context) ([]gormModels.Task, error) {
	var tasks []gormModels.Task

	err := r.db.WithContext(ctx).
		Where("task_type = ? AND status IN ?",
			constants.TaskStoryTranslate,
			[]constants.TaskStatus{constants.TaskTodo, constants.TaskInProgress}).
		Order("due_date ASC").
		Find(&tasks).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list translation tasks: %w", err)
	}
	return tasks, nil
}
