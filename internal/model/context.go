package model

import "context"

// ContextManager stores the authenticated user and the claims of the access
// token it was resolved from in a request context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
	SetAccessClaimsToContext(ctx context.Context, claims Claims) context.Context
	GetAccessClaimsFromContext(ctx context.Context) (Claims, bool)
}
