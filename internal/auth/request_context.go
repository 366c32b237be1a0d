package auth

import (
	"context"

	gormModels "newskoop/newsroom/internal/models/gorm"
)

type contextKey string

var actorKey contextKey = "actor"
var requestIDKey contextKey = "request_id"

// SetActor stores the authenticated user on the request context. Every
// workflow call receives the actor explicitly from here; there is no ambient
// current-user state below the HTTP layer.
func SetActor(ctx context.Context, user *gormModels.User) context.Context {
	return context.WithValue(ctx, actorKey, user)
}

// GetActor retrieves the authenticated user from the request context.
func GetActor(ctx context.Context) *gormModels.User {
	if user, ok := ctx.Value(actorKey).(*gormModels.User); ok {
		return user
	}
	return nil
}

// SetRequestID stores the request correlation id on the context.
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the request correlation id, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
