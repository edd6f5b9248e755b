package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// Session turns a presented token into the user it was issued to.
type Session struct {
	manager  model.TokenManager
	registry model.RevocationRegistry
	users    model.UserStore
	logger   *logger.Logger
}

func NewSession(
	manager model.TokenManager,
	registry model.RevocationRegistry,
	users model.UserStore,
	logger *logger.Logger,
) *Session {
	return &Session{
		manager:  manager,
		registry: registry,
		users:    users,
		logger:   logger,
	}
}

// Resolve validates raw as a token of the expected type and loads its user.
// Authentication failures are *model.AuthError values; a failing user store
// is returned as a plain wrapped error.
func (s *Session) Resolve(ctx context.Context, raw string, expected model.TokenType) (model.User, model.Claims, error) {
	claims, err := s.manager.Parse(raw)
	if err != nil {
		s.logger.Debug("Session: token rejected", "error", err.Error())
		return model.User{}, model.Claims{}, err
	}

	if claims.Type != expected {
		s.logger.Debug("Session: token type mismatch",
			"expected", expected,
			"got", claims.Type)
		return model.User{}, model.Claims{}, model.NewAuthError(model.ErrInvalidToken, "token type mismatch")
	}

	if s.registry.IsRevoked(claims.ID) {
		s.logger.Info("Session: revoked token presented",
			"jti", claims.ID,
			"type", claims.Type)
		return model.User{}, model.Claims{}, model.NewAuthError(model.ErrInvalidToken, "token is blocked")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return model.User{}, model.Claims{}, model.NewAuthError(model.ErrInvalidToken, "bad subject")
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.Claims{}, model.NewAuthError(model.ErrUserNotFound, "user not found")
	}
	if err != nil {
		s.logger.Error("Session: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, model.Claims{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, claims, nil
}
