package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/models/dtos/requests"
	"newskoop/newsroom/internal/models/dtos/responses"
	"newskoop/newsroom/internal/services"
)

// ListCategoriesHandler handles GET /api/v1/categories
func ListCategoriesHandler(categorySvc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tree, err := categorySvc.Tree(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		out := make([]responses.CategoryResponse, 0, len(tree))
		for i := range tree {
			out = append(out, responses.NewCategoryResponse(&tree[i]))
		}
		common.RespondSuccess(w, "categories", out)
	}
}

// GetCategoryHandler handles GET /api/v1/categories/{id}
func GetCategoryHandler(categorySvc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := categorySvc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "category", responses.NewCategoryResponse(category))
	}
}

// CreateCategoryHandler handles POST /api/v1/categories
func CreateCategoryHandler(categorySvc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CategoryCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		category, err := categorySvc.Create(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "category created", responses.NewCategoryResponse(category), http.StatusCreated)
	}
}

// UpdateCategoryHandler handles PUT /api/v1/categories/{id}
func UpdateCategoryHandler(categorySvc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CategoryUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		category, err := categorySvc.Update(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "category updated", responses.NewCategoryResponse(category))
	}
}

// DeleteCategoryHandler handles DELETE /api/v1/categories/{id}
func DeleteCategoryHandler(categorySvc *services.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := categorySvc.Delete(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "category deleted", nil)
	}
}
