package middleware

import (
	"context"
	"net/http"

	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// TokenService resolves an access token to its user and claims.
type TokenService interface {
	Authenticate(ctx context.Context, access string) (model.User, model.Claims, error)
}

// Authenticate validates bearer tokens and puts the resolved user and access
// claims into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handler rejects requests without a valid access token with 401.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			response.WriteError(w, r, model.NewAuthError(model.ErrInvalidToken, "not authenticated"))
			return
		}

		user, claims, err := m.tokenService.Authenticate(r.Context(), token)
		if err != nil {
			m.logger.Debug("Authenticate: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			response.WriteError(w, r, err)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		ctx = m.contextManager.SetAccessClaimsToContext(ctx, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
