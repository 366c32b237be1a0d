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

// ListShowsHandler handles GET /api/v1/shows
func ListShowsHandler(showSvc *services.ShowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := repositories.ShowFilter{
			Status:   constants.ContentStatus(q.Get("status")),
			Language: constants.Language(q.Get("language")),
			Search:   q.Get("q"),
		}

		shows, err := showSvc.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "shows", responses.NewShowResponses(shows))
	}
}

// GetShowHandler handles GET /api/v1/shows/{id}
func GetShowHandler(showSvc *services.ShowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		show, err := showSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "show", responses.NewShowResponse(show))
	}
}

// CreateShowHandler handles POST /api/v1/shows
func CreateShowHandler(showSvc *services.ShowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.ShowCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		show, err := showSvc.Create(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "show created", responses.NewShowResponse(show), http.StatusCreated)
	}
}

// UpdateShowHandler handles PUT /api/v1/shows/{id}
func UpdateShowHandler(showSvc *services.ShowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.ShowUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		show, err := showSvc.Update(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "show updated", responses.NewShowResponse(show))
	}
}

// DeleteShowHandler handles DELETE /api/v1/shows/{id}
func DeleteShowHandler(showSvc *services.ShowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := showSvc.Delete(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "show deleted", nil)
	}
}

// PublishShowHandler handles POST /api/v1/shows/{id}/publish
func PublishShowHandler(showSvc *services.ShowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		show, err := showSvc.Publish(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "show published", responses.NewShowResponse(show))
	}
}

// TranslateShowHandler handles POST /api/v1/shows/{id}/translate
func TranslateShowHandler(showSvc *services.ShowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TranslateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		translation, err := showSvc.Translate(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), req.Language)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "show translated", responses.NewShowResponse(translation), http.StatusCreated)
	}
}
