package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/models/dtos/requests"
	"newskoop/newsroom/internal/models/dtos/responses"
	"newskoop/newsroom/internal/services"
)

// ListTasksHandler handles GET /api/v1/tasks
func ListTasksHandler(taskSvc *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := repositories.TaskFilter{
			Status:       constants.TaskStatus(q.Get("status")),
			TaskType:     constants.TaskType(q.Get("task_type")),
			AssignedToID: q.Get("assigned_to"),
			AssignedByID: q.Get("assigned_by"),
		}

		tasks, err := taskSvc.List(r.Context(), auth.GetActor(r.Context()), filter)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "tasks", responses.NewTaskResponses(tasks))
	}
}

// MyTasksHandler handles GET /api/v1/tasks/mine
func MyTasksHandler(taskSvc *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := taskSvc.MyTasks(r.Context(), auth.GetActor(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "my tasks", responses.NewTaskResponses(tasks))
	}
}

// GetTaskHandler handles GET /api/v1/tasks/{id}
func GetTaskHandler(taskSvc *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, err := taskSvc.GetByID(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "task", responses.NewTaskResponse(task))
	}
}

// CreateTaskHandler handles POST /api/v1/tasks
func CreateTaskHandler(taskSvc *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TaskCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		task, err := taskSvc.Create(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "task created", responses.NewTaskResponse(task), http.StatusCreated)
	}
}

// CreateTranslationTaskHandler handles POST /api/v1/tasks/translations
func CreateTranslationTaskHandler(taskSvc *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TranslationTaskCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		task, err := taskSvc.CreateTranslationTask(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "translation task created", responses.NewTaskResponse(task), http.StatusCreated)
	}
}

// UpdateTaskStatusHandler handles POST /api/v1/tasks/{id}/status
func UpdateTaskStatusHandler(taskSvc *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TaskStatusUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		task, err := taskSvc.UpdateStatus(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "task status updated", responses.NewTaskResponse(task))
	}
}

// AddTaskNoteHandler handles POST /api/v1/tasks/{id}/notes
func AddTaskNoteHandler(taskSvc *services.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TaskNoteCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		note, err := taskSvc.AddNote(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "note added", responses.TaskNoteResponse{
			ID:        note.ID,
			UserID:    note.UserID,
			Content:   note.Content,
			CreatedAt: note.CreatedAt,
		}, http.StatusCreated)
	}
}
