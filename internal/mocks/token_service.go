package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/clinic-server/internal/model"
)

// TokenService is a mock of the token lifecycle used by the HTTP layer.
type TokenService struct {
	mock.Mock
}

func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	register(&m.Mock, t)
	return m
}

func (m *TokenService) Authenticate(ctx context.Context, access string) (model.User, model.Claims, error) {
	args := m.Called(ctx, access)
	return args.Get(0).(model.User), args.Get(1).(model.Claims), args.Error(2)
}

func (m *TokenService) Refresh(ctx context.Context, access, refresh string) (model.TokenPair, error) {
	args := m.Called(ctx, access, refresh)
	return args.Get(0).(model.TokenPair), args.Error(1)
}

func (m *TokenService) Logout(ctx context.Context, access model.Claims, refresh string) error {
	args := m.Called(ctx, access, refresh)
	return args.Error(0)
}
