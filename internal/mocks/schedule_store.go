package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/clinic-server/internal/model"
)

// ScheduleStore is a mock of model.ScheduleStore.
type ScheduleStore struct {
	mock.Mock
}

func NewScheduleStore(t testingT) *ScheduleStore {
	m := &ScheduleStore{}
	register(&m.Mock, t)
	return m
}

func (m *ScheduleStore) List(ctx context.Context, filter model.ScheduleFilter, page model.Page) ([]model.Schedule, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]model.Schedule)
	return items, args.Error(1)
}

func (m *ScheduleStore) GetByID(ctx context.Context, id int64) (model.Schedule, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Schedule), args.Error(1)
}

func (m *ScheduleStore) Create(ctx context.Context, item model.Schedule) (model.Schedule, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.Schedule), args.Error(1)
}

func (m *ScheduleStore) Update(ctx context.Context, id int64, patch model.SchedulePatch) (model.Schedule, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Schedule), args.Error(1)
}

func (m *ScheduleStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
