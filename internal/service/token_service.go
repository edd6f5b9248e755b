package service

import (
	"context"
	"fmt"

	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// TokenService issues token pairs and drives refresh rotation and logout.
// It is the only writer of the revocation registry.
type TokenService struct {
	manager  model.TokenManager
	registry model.RevocationRegistry
	session  *Session
	logger   *logger.Logger
}

func NewTokenService(
	manager model.TokenManager,
	registry model.RevocationRegistry,
	session *Session,
	logger *logger.Logger,
) *TokenService {
	return &TokenService{
		manager:  manager,
		registry: registry,
		session:  session,
		logger:   logger,
	}
}

// Issue creates a fresh access/refresh pair for the user.
func (s *TokenService) Issue(_ context.Context, userID int64) (model.TokenPair, error) {
	pair, err := s.manager.IssuePair(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue token pair: %w", err)
	}
	return pair, nil
}

// Authenticate resolves an access token to its user and claims.
func (s *TokenService) Authenticate(ctx context.Context, access string) (model.User, model.Claims, error) {
	return s.session.Resolve(ctx, access, model.TokenTypeAccess)
}

// Refresh rotates a refresh token. The presented access token, if any, is
// revoked when it carries a valid signature, even if it has expired. The
// refresh token is resolved, revoked and replaced by a new pair, so
// presenting it again fails.
func (s *TokenService) Refresh(ctx context.Context, access, refresh string) (model.TokenPair, error) {
	if access != "" {
		if jti, exp, ok := s.manager.Peek(access); ok {
			s.registry.Revoke(jti, exp)
		}
	}

	if refresh == "" {
		return model.TokenPair{}, model.NewAuthError(model.ErrInvalidToken, "no refresh token")
	}

	user, claims, err := s.session.Resolve(ctx, refresh, model.TokenTypeRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}

	s.registry.Revoke(claims.ID, claims.ExpiresAt)

	pair, err := s.manager.IssuePair(user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue token pair: %w", err)
	}

	s.logger.Debug("TokenService: refresh token rotated",
		"user_id", user.ID,
		"old_jti", claims.ID,
		"new_jti", pair.Refresh.ID)

	return pair, nil
}

// Logout revokes an access token already resolved by Authenticate and, when
// it is a valid refresh token, the presented refresh token.
func (s *TokenService) Logout(_ context.Context, access model.Claims, refresh string) error {
	if access.Type != model.TokenTypeAccess || access.ID == "" {
		return model.NewAuthError(model.ErrInvalidToken, "not authenticated")
	}

	s.registry.Revoke(access.ID, access.ExpiresAt)

	if refresh != "" {
		refreshClaims, err := s.manager.Parse(refresh)
		if err == nil && refreshClaims.Type == model.TokenTypeRefresh {
			s.registry.Revoke(refreshClaims.ID, refreshClaims.ExpiresAt)
		}
	}

	s.logger.Debug("TokenService: user logged out", "subject", access.Subject)
	return nil
}
