package middleware

import (
	"net/http"
	"strings"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/db/repositories"
)

// AuthMiddleware authenticates the bearer token and loads the user onto the
// request context. Handlers below receive the actor via auth.GetActor and
// pass it to the services explicitly.
func AuthMiddleware(tokens *auth.TokenService, userRepo *repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.VerifyAccess(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				common.RespondError(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			user, err := userRepo.GetByID(r.Context(), claims.UserID)
			if err != nil {
				common.RespondError(w, "failed to resolve user", http.StatusInternalServerError)
				return
			}
			if user == nil || !user.IsActive {
				common.RespondError(w, "account not found or inactive", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetActor(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
