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

// ListUsersHandler handles GET /api/v1/users
func ListUsersHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := repositories.UserFilter{
			UserType:  constants.UserType(q.Get("user_type")),
			StaffRole: constants.StaffRole(q.Get("staff_role")),
			StationID: q.Get("station"),
			Search:    q.Get("q"),
		}
		if v := q.Get("is_active"); v != "" {
			active := v == "true"
			filter.IsActive = &active
		}

		users, err := userSvc.List(r.Context(), auth.GetActor(r.Context()), filter)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "users", responses.NewUserResponses(users))
	}
}

// GetUserHandler handles GET /api/v1/users/{id}
func GetUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "user", responses.NewUserResponse(user))
	}
}

// CreateStaffUserHandler handles POST /api/v1/users/staff
func CreateStaffUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.StaffUserCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		user, err := userSvc.CreateStaffUser(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "staff user created", responses.NewUserResponse(user), http.StatusCreated)
	}
}

// CreateRadioUserHandler handles POST /api/v1/users/radio
func CreateRadioUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.RadioUserCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		user, err := userSvc.CreateRadioUser(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "radio user created", responses.NewUserResponse(user), http.StatusCreated)
	}
}

// UpdateStaffUserHandler handles PUT /api/v1/users/staff/{id}
func UpdateStaffUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.StaffUserUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		user, err := userSvc.UpdateStaffUser(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "staff user updated", responses.NewUserResponse(user))
	}
}

// UpdateRadioUserHandler handles PUT /api/v1/users/radio/{id}
func UpdateRadioUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.RadioUserUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		user, err := userSvc.UpdateRadioUser(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "radio user updated", responses.NewUserResponse(user))
	}
}

// DeleteUserHandler handles DELETE /api/v1/users/{id}
func DeleteUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := userSvc.Delete(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "user deleted", nil)
	}
}

// ResetPasswordHandler handles POST /api/v1/users/{id}/reset-password
func ResetPasswordHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.ResetPasswordRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		if err := userSvc.ResetPassword(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), req.Password); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "password reset", nil)
	}
}

// SetUserActiveHandler handles POST /api/v1/users/{id}/set-active
func SetUserActiveHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SetActiveRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		if err := userSvc.SetActive(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), *req.IsActive); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "user status updated", nil)
	}
}
