package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
)

type Task struct {
	ID          string               `gorm:"column:id;primaryKey;type:uuid"`
	TaskType    constants.TaskType   `gorm:"column:task_type;type:task_type"`
	Title       string               `gorm:"column:title"`
	Description string               `gorm:"column:description"`
	Status      constants.TaskStatus `gorm:"column:status;type:task_status;default:TODO"`

	AssignedByID string     `gorm:"column:assigned_by_id;type:uuid"`
	AssignedToID string     `gorm:"column:assigned_to_id;type:uuid"`
	DueDate      *time.Time `gorm:"column:due_date"`

	// Related content (optional)
	RelatedStoryID    *string `gorm:"column:related_story_id;type:uuid"`
	RelatedBulletinID *string `gorm:"column:related_bulletin_id;type:uuid"`

	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
	CompletedAt *time.Time `gorm:"column:completed_at"`

	// Relationships
	AssignedBy      *User     `gorm:"foreignKey:AssignedByID"`
	AssignedTo      *User     `gorm:"foreignKey:AssignedToID"`
	RelatedStory    *Story    `gorm:"foreignKey:RelatedStoryID"`
	RelatedBulletin *Bulletin `gorm:"foreignKey:RelatedBulletinID"`
	Notes           []TaskNote `gorm:"foreignKey:TaskID"`
}

// TableName specifies the table name for GORM
func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TaskNote is an append-only audit entry on a task.
type TaskNote struct {
	ID      string `gorm:"column:id;primaryKey;type:uuid"`
	TaskID  string `gorm:"column:task_id;type:uuid"`
	UserID  string `gorm:"column:user_id;type:uuid"`
	Content string `gorm:"column:content"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	User *User `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (TaskNote) TableName() string {
	return "task_notes"
}

func (n *TaskNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
