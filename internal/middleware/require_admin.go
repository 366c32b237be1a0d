package middleware

import (
	"net/http"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/permissions"
)

// RequireAdminMiddleware rejects requests from accounts below ADMIN.
func RequireAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := auth.GetActor(r.Context())
			if !permissions.IsAdmin(actor) {
				common.RespondError(w, "admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
