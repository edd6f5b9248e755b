package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/clinic-server/internal/model"
)

// BranchStore is a mock of model.BranchStore.
type BranchStore struct {
	mock.Mock
}

func NewBranchStore(t testingT) *BranchStore {
	m := &BranchStore{}
	register(&m.Mock, t)
	return m
}

func (m *BranchStore) List(ctx context.Context, page model.Page) ([]model.Branch, error) {
	args := m.Called(ctx, page)
	items, _ := args.Get(0).([]model.Branch)
	return items, args.Error(1)
}

func (m *BranchStore) GetByID(ctx context.Context, id int64) (model.Branch, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Branch), args.Error(1)
}

func (m *BranchStore) Create(ctx context.Context, item model.Branch) (model.Branch, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.Branch), args.Error(1)
}

func (m *BranchStore) Update(ctx context.Context, id int64, patch model.BranchPatch) (model.Branch, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Branch), args.Error(1)
}

func (m *BranchStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
