package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/clinic-server/internal/model"
)

// RoomStore is a mock of model.RoomStore.
type RoomStore struct {
	mock.Mock
}

func NewRoomStore(t testingT) *RoomStore {
	m := &RoomStore{}
	register(&m.Mock, t)
	return m
}

func (m *RoomStore) List(ctx context.Context, filter model.RoomFilter, page model.Page) ([]model.Room, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]model.Room)
	return items, args.Error(1)
}

func (m *RoomStore) GetByID(ctx context.Context, id int64) (model.Room, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Room), args.Error(1)
}

func (m *RoomStore) Create(ctx context.Context, item model.Room) (model.Room, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.Room), args.Error(1)
}

func (m *RoomStore) Update(ctx context.Context, id int64, patch model.RoomPatch) (model.Room, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Room), args.Error(1)
}

func (m *RoomStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
