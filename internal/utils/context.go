package utils

import (
	"context"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	emailKey  contextKey = "email"
	roleKey   contextKey = "role"
)

// WithUser stores the authenticated user on the context
func WithUser(ctx context.Context, userID uuid.UUID, email, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, emailKey, email)
	return context.WithValue(ctx, roleKey, role)
}

// GetUserIDFromContext returns the authenticated user id
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// ActorFromContext returns the authenticated user as a builder actor.
// Tokens without a role act as agents.
func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	id, ok := GetUserIDFromContext(ctx)
	if !ok {
		return models.Actor{}, false
	}
	role, _ := ctx.Value(roleKey).(string)
	if role == "" {
		role = models.RoleAgent
	}
	return models.Actor{UserID: id, Role: role}, true
}
