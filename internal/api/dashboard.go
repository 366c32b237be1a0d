package api

import (
	"net/http"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/services"
)

// DashboardHandler handles GET /api/v1/dashboard
func DashboardHandler(dashboardSvc *services.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := dashboardSvc.Overview(r.Context(), auth.GetActor(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "dashboard", overview)
	}
}

// TranslationDashboardHandler handles GET /api/v1/dashboard/translations
func TranslationDashboardHandler(dashboardSvc *services.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := dashboardSvc.Translations(r.Context(), auth.GetActor(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "translation dashboard", dashboard)
	}
}
