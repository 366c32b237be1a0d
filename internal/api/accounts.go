package api

import (
	"net/http"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/metrics"
	"newskoop/newsroom/internal/models/dtos/requests"
	"newskoop/newsroom/internal/models/dtos/responses"
	"newskoop/newsroom/internal/services"
)

// LoginHandler handles POST /api/v1/auth/login
func LoginHandler(userSvc *services.UserService, tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.LoginRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		user, err := userSvc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			respondServiceError(w, r, err)
			return
		}

		access, refresh, err := tokens.IssuePair(user.ID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		metrics.LoginsTotal.WithLabelValues("success").Inc()
		logging.Info("user logged in", "user", user.ID)
		common.RespondSuccess(w, "login successful", responses.LoginResponse{
			User:    responses.NewUserResponse(user),
			Access:  access,
			Refresh: refresh,
		})
	}
}

// LogoutHandler handles POST /api/v1/auth/logout. The refresh token is
// revoked for the remainder of its lifetime; access tokens simply expire.
func LogoutHandler(tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.LogoutRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		if err := tokens.Revoke(req.Refresh); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "logged out", nil)
	}
}

// TokenRefreshHandler handles POST /api/v1/auth/refresh
func TokenRefreshHandler(tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.TokenRefreshRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		access, err := tokens.Refresh(req.Refresh)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "token refreshed", responses.TokenRefreshResponse{Access: access})
	}
}

// GetProfileHandler handles GET /api/v1/auth/profile
func GetProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := auth.GetActor(r.Context())
		common.RespondSuccess(w, "profile", responses.NewUserResponse(actor))
	}
}

// UpdateProfileHandler handles PUT /api/v1/auth/profile
func UpdateProfileHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.ProfileUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		user, err := userSvc.UpdateProfile(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "profile updated", responses.NewUserResponse(user))
	}
}
