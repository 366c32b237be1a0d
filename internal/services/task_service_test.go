package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/gorm"

	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/metrics"
	"newskoop/newsroom/internal/models/dtos/requests"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

func newTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewTaskService(db,
		repositories.NewTaskRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewStoryRepository(db),
		repositories.NewBulletinRepository(db))
	return svc, db
}

func TestCreateTaskDropsUnresolvableRefs(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	missing := "22222222-2222-2222-2222-222222222222"
	task, err := svc.Create(ctx, subEditor, &requests.TaskCreateRequest{
		TaskType:       constants.TaskStoryCreate,
		Title:          "Cover the council meeting",
		Description:    "File by Friday.",
		AssignedToID:   journalist.ID,
		RelatedStoryID: &missing,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.RelatedStoryID != nil {
		t.Error("unresolvable related story was kept")
	}
	if task.Status != constants.TaskTodo {
		t.Errorf("new task status = %s, want TODO", task.Status)
	}
	if task.AssignedByID != subEditor.ID {
		t.Errorf("assigned_by = %s, want the actor", task.AssignedByID)
	}
}

func TestCreateTaskRejectsInactiveAssignee(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)
	if err := db.Model(journalist).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err := svc.Create(ctx, subEditor, &requests.TaskCreateRequest{
		TaskType:     constants.TaskOther,
		Title:        "Archive cleanup",
		Description:  "Sort the old tapes.",
		AssignedToID: journalist.ID,
	})
	if err == nil || !IsValidation(err) {
		t.Errorf("got %v, want validation error", err)
	}
}

func TestTaskVisibility(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	editor := newStaffUser(t, db, "ed@newskoop.com", constants.RoleEditor)
	assignee := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)
	bystander := newStaffUser(t, db, "intern@newskoop.com", constants.RoleIntern)

	task, err := svc.Create(ctx, subEditor, &requests.TaskCreateRequest{
		TaskType:     constants.TaskFollowUp,
		Title:        "Chase the mayor's office",
		Description:  "Still waiting on comment.",
		AssignedToID: assignee.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, tc := range []struct {
		name  string
		actor *gormModels.User
		want  int
	}{
		{"editor sees all", editor, 1},
		{"assignee sees own", assignee, 1},
		{"assigner sees own", subEditor, 1},
		{"bystander sees none", bystander, 0},
	} {
		tasks, err := svc.List(ctx, tc.actor, repositories.TaskFilter{})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(tasks) != tc.want {
			t.Errorf("%s: got %d tasks, want %d", tc.name, len(tasks), tc.want)
		}
	}

	if _, err := svc.GetByID(ctx, bystander, task.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("bystander GetByID: got %v, want ErrPermissionDenied", err)
	}
	if _, err := svc.GetByID(ctx, assignee, task.ID); err != nil {
		t.Errorf("assignee GetByID: %v", err)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	assignee := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)
	bystander := newStaffUser(t, db, "other@newskoop.com", constants.RoleJournalist)

	task, err := svc.Create(ctx, subEditor, &requests.TaskCreateRequest{
		TaskType:     constants.TaskStoryEdit,
		Title:        "Tighten the lead",
		Description:  "Second paragraph buries it.",
		AssignedToID: assignee.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, bystander, task.ID, &requests.TaskStatusUpdateRequest{
		Status: constants.TaskInProgress,
	}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("bystander status update: got %v, want ErrPermissionDenied", err)
	}

	completedBefore := testutil.ToFloat64(metrics.TasksCompleted.WithLabelValues(string(constants.TaskStoryEdit)))

	done, err := svc.UpdateStatus(ctx, assignee, task.ID, &requests.TaskStatusUpdateRequest{
		Status: constants.TaskCompleted,
		Note:   "Filed.",
	})
	if err != nil {
		t.Fatalf("assignee completes: %v", err)
	}
	if done.CompletedAt == nil {
		t.Error("completed_at not stamped")
	}
	completedAfter := testutil.ToFloat64(metrics.TasksCompleted.WithLabelValues(string(constants.TaskStoryEdit)))
	if completedAfter != completedBefore+1 {
		t.Errorf("completed counter = %v, want %v", completedAfter, completedBefore+1)
	}
	var notes int64
	db.Model(&gormModels.TaskNote{}).Where("task_id = ?", task.ID).Count(&notes)
	if notes != 1 {
		t.Errorf("notes = %d, want 1", notes)
	}

	// Leaving COMPLETED clears the stamp.
	reopened, err := svc.UpdateStatus(ctx, assignee, task.ID, &requests.TaskStatusUpdateRequest{
		Status: constants.TaskInProgress,
	})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.CompletedAt != nil {
		t.Error("completed_at not cleared on reopen")
	}
}

func TestCreateTranslationTask(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	subEditor := newStaffUser(t, db, "sub@newskoop.com", constants.RoleSubEditor)
	translator := newStaffUser(t, db, "xh@newskoop.com", constants.RoleJournalist)
	author := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	story := newStory(t, db, "Harbour expansion", author, constants.StatusPublished, constants.LanguageEnglish)

	task, err := svc.CreateTranslationTask(ctx, subEditor, &requests.TranslationTaskCreateRequest{
		ContentType:  "story",
		ContentID:    story.ID,
		Language:     constants.LanguageXhosa,
		AssignedToID: translator.ID,
	})
	if err != nil {
		t.Fatalf("CreateTranslationTask: %v", err)
	}
	if task.TaskType != constants.TaskStoryTranslate {
		t.Errorf("task type = %s, want STORY_TRANSLATE", task.TaskType)
	}
	if task.RelatedStoryID == nil || *task.RelatedStoryID != story.ID {
		t.Error("task not linked to the story")
	}

	// The target language must still be open.
	translation := newStory(t, db, "Harbour expansion", author, constants.StatusDraft, constants.LanguageXhosa)
	if err := db.Model(translation).Update("original_story_id", story.ID).Error; err != nil {
		t.Fatalf("link translation: %v", err)
	}
	_, err = svc.CreateTranslationTask(ctx, subEditor, &requests.TranslationTaskCreateRequest{
		ContentType:  "story",
		ContentID:    story.ID,
		Language:     constants.LanguageXhosa,
		AssignedToID: translator.ID,
	})
	if !errors.Is(err, ErrDuplicateTranslation) {
		t.Errorf("got %v, want ErrDuplicateTranslation", err)
	}
}
