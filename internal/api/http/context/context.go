package context

import (
	"context"

	"github.com/dtroode/clinic-server/internal/model"
)

type (
	userKey         struct{}
	accessClaimsKey struct{}
)

// Manager stores the authenticated user in request contexts.
type Manager struct{}

// NewManager creates a new context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the user stored by SetUserToContext.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}

// SetAccessClaimsToContext returns a copy of ctx carrying the claims of the
// access token that authenticated the request.
func (m *Manager) SetAccessClaimsToContext(ctx context.Context, claims model.Claims) context.Context {
	return context.WithValue(ctx, accessClaimsKey{}, claims)
}

func (m *Manager) GetAccessClaimsFromContext(ctx context.Context) (model.Claims, bool) {
	claims, ok := ctx.Value(accessClaimsKey{}).(model.Claims)
	return claims, ok
}
