package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/clinic-server/internal/model"
)

// SectionStore is a mock of model.SectionStore.
type SectionStore struct {
	mock.Mock
}

func NewSectionStore(t testingT) *SectionStore {
	m := &SectionStore{}
	register(&m.Mock, t)
	return m
}

func (m *SectionStore) List(ctx context.Context, filter model.SectionFilter, page model.Page) ([]model.Section, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]model.Section)
	return items, args.Error(1)
}

func (m *SectionStore) GetByID(ctx context.Context, id int64) (model.Section, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Section), args.Error(1)
}

func (m *SectionStore) Create(ctx context.Context, item model.Section) (model.Section, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.Section), args.Error(1)
}

func (m *SectionStore) Update(ctx context.Context, id int64, patch model.SectionPatch) (model.Section, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Section), args.Error(1)
}

func (m *SectionStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
