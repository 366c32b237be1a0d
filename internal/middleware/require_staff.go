package middleware

import (
	"net/http"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/permissions"
)

// RequireStaffMiddleware rejects requests from non-staff accounts.
func RequireStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := auth.GetActor(r.Context())
			if !permissions.IsStaff(actor) {
				common.RespondError(w, "staff access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
