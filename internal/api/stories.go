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

// ListStoriesHandler handles GET /api/v1/stories
func ListStoriesHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := repositories.StoryFilter{
			Status:   constants.ContentStatus(q.Get("status")),
			Language: constants.Language(q.Get("language")),
			AuthorID: q.Get("author"),
			Search:   q.Get("q"),
		}

		stories, err := storySvc.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "stories", responses.NewStoryResponses(stories))
	}
}

// GetStoryHandler handles GET /api/v1/stories/{id}
func GetStoryHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		story, err := storySvc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "story", responses.NewStoryResponse(story))
	}
}

// CreateStoryHandler handles POST /api/v1/stories
func CreateStoryHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.StoryCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		story, err := storySvc.Create(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "story created", responses.NewStoryResponse(story), http.StatusCreated)
	}
}

// UpdateStoryHandler handles PUT /api/v1/stories/{id}
func UpdateStoryHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.StoryUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		story, err := storySvc.Update(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "story updated", responses.NewStoryResponse(story))
	}
}

// DeleteStoryHandler handles DELETE /api/v1/stories/{id}
func DeleteStoryHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := storySvc.Delete(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "story deleted", nil)
	}
}

// PublishStoryHandler handles POST /api/v1/stories/{id}/publish
func PublishStoryHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		story, err := storySvc.Publish(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "story published", responses.NewStoryResponse(story))
	}
}

// TranslateStoryHandler handles POST /api/v1/stories/{id}/translate
func TranslateStoryHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TranslateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		translation, err := storySvc.Translate(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), req.Language)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "story translated", responses.NewStoryResponse(translation), http.StatusCreated)
	}
}

// AddAudioClipHandler handles POST /api/v1/stories/{id}/audio
func AddAudioClipHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.AudioClipCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		clip, err := storySvc.AddAudioClip(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "audio clip added", responses.AudioClipResponse{
			ID:          clip.ID,
			Title:       clip.Title,
			Description: clip.Description,
			FilePath:    clip.FilePath,
			Duration:    clip.Duration,
			CreatedAt:   clip.CreatedAt,
		}, http.StatusCreated)
	}
}

// DeleteAudioClipHandler handles DELETE /api/v1/stories/{id}/audio/{clip_id}
func DeleteAudioClipHandler(storySvc *services.StoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := storySvc.DeleteAudioClip(r.Context(), auth.GetActor(r.Context()),
			chi.URLParam(r, "id"), chi.URLParam(r, "clip_id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "audio clip deleted", nil)
	}
}
