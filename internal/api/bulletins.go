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

// ListBulletinsHandler handles GET /api/v1/bulletins
func ListBulletinsHandler(bulletinSvc *services.BulletinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := repositories.BulletinFilter{
			Status:   constants.ContentStatus(q.Get("status")),
			Language: constants.Language(q.Get("language")),
			Search:   q.Get("q"),
		}

		bulletins, err := bulletinSvc.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "bulletins", responses.NewBulletinResponses(bulletins))
	}
}

// GetBulletinHandler handles GET /api/v1/bulletins/{id}
func GetBulletinHandler(bulletinSvc *services.BulletinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bulletin, err := bulletinSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "bulletin", responses.NewBulletinResponse(bulletin))
	}
}

// CreateBulletinHandler handles POST /api/v1/bulletins. Story IDs in the
// lineup that do not resolve are reported back as skipped, not rejected.
func CreateBulletinHandler(bulletinSvc *services.BulletinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.BulletinCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		bulletin, skipped, err := bulletinSvc.Create(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp := responses.NewBulletinResponse(bulletin)
		resp.SkippedStoryIDs = skipped
		common.RespondSuccess(w, "bulletin created", resp, http.StatusCreated)
	}
}

// UpdateBulletinHandler handles PUT /api/v1/bulletins/{id}
func UpdateBulletinHandler(bulletinSvc *services.BulletinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.BulletinUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		bulletin, skipped, err := bulletinSvc.Update(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp := responses.NewBulletinResponse(bulletin)
		resp.SkippedStoryIDs = skipped
		common.RespondSuccess(w, "bulletin updated", resp)
	}
}

// DeleteBulletinHandler handles DELETE /api/v1/bulletins/{id}
func DeleteBulletinHandler(bulletinSvc *services.BulletinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := bulletinSvc.Delete(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "bulletin deleted", nil)
	}
}

// PublishBulletinHandler handles POST /api/v1/bulletins/{id}/publish
func PublishBulletinHandler(bulletinSvc *services.BulletinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bulletin, err := bulletinSvc.Publish(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "bulletin published", responses.NewBulletinResponse(bulletin))
	}
}

// TranslateBulletinHandler handles POST /api/v1/bulletins/{id}/translate
func TranslateBulletinHandler(bulletinSvc *services.BulletinService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TranslateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		translation, err := bulletinSvc.Translate(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), req.Language)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "bulletin translated", responses.NewBulletinResponse(translation), http.StatusCreated)
	}
}
