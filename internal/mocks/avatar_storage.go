package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/clinic-server/internal/model"
)

// AvatarStorage is a mock of model.AvatarStorage.
type AvatarStorage struct {
	mock.Mock
}

func NewAvatarStorage(t testingT) *AvatarStorage {
	m := &AvatarStorage{}
	register(&m.Mock, t)
	return m
}

func (m *AvatarStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, reader, size, contentType).Error(0)
}

func (m *AvatarStorage) Download(ctx context.Context, key string) (io.ReadCloser, model.ObjectInfo, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(model.ObjectInfo), args.Error(2)
}

func (m *AvatarStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
