package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/clinic-server/internal/model"
)

// SpecialtyStore is a mock of model.SpecialtyStore.
type SpecialtyStore struct {
	mock.Mock
}

func NewSpecialtyStore(t testingT) *SpecialtyStore {
	m := &SpecialtyStore{}
	register(&m.Mock, t)
	return m
}

func (m *SpecialtyStore) List(ctx context.Context, page model.Page) ([]model.Specialty, error) {
	args := m.Called(ctx, page)
	items, _ := args.Get(0).([]model.Specialty)
	return items, args.Error(1)
}

func (m *SpecialtyStore) GetByID(ctx context.Context, id int64) (model.Specialty, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Specialty), args.Error(1)
}

func (m *SpecialtyStore) Create(ctx context.Context, item model.Specialty) (model.Specialty, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.Specialty), args.Error(1)
}

func (m *SpecialtyStore) Update(ctx context.Context, id int64, patch model.SpecialtyPatch) (model.Specialty, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Specialty), args.Error(1)
}

func (m *SpecialtyStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
