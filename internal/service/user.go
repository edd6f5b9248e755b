package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// MaxAvatarSize caps the size of an uploaded avatar image.
const MaxAvatarSize = 5 << 20

var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

type User struct {
	userStore model.UserStore
	storage   model.AvatarStorage
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, storage model.AvatarStorage, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		storage:   storage,
		logger:    logger,
	}
}

func (s *User) List(ctx context.Context, filter model.UserFilter, page model.Page) ([]model.User, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if filter.Role != nil && !filter.Role.Valid() {
		return nil, model.NewValidationError("role", "must be patient, doctor or admin")
	}

	users, err := s.userStore.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *User) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

func (s *User) Update(ctx context.Context, id int64, patch model.UserPatch) (model.User, error) {
	if err := optionalText("full_name", patch.FullName); err != nil {
		return model.User{}, err
	}
	if err := optionalText("phone", patch.Phone); err != nil {
		return model.User{}, err
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		if err := validateEmail(email); err != nil {
			return model.User{}, err
		}
		patch.Email = &email
	}
	if patch.SpecialtyID != nil {
		if err := validatePositive("specialty_id", *patch.SpecialtyID); err != nil {
			return model.User{}, err
		}
	}

	user, err := s.userStore.Update(ctx, id, patch)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return user, nil
}

// Delete removes the user and then its avatar. A failure to remove the
// avatar object is logged and does not fail the call.
func (s *User) Delete(ctx context.Context, id int64) error {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user %d: %w", id, err)
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	if user.AvatarKey != nil {
		s.removeAvatar(ctx, id, *user.AvatarKey)
	}

	s.logger.Info("User service: user deleted", "user_id", id)
	return nil
}

// UploadAvatar stores a PNG or JPEG image as the user's avatar and replaces
// any previous one.
func (s *User) UploadAvatar(ctx context.Context, id int64, r io.Reader, size int64) (model.User, error) {
	if size <= 0 {
		return model.User{}, model.NewValidationError("avatar", "is empty")
	}
	if size > MaxAvatarSize {
		return model.User{}, model.NewValidationError("avatar", "is too large")
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return model.User{}, fmt.Errorf("failed to read avatar: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return model.User{}, model.NewValidationError("avatar", "must be a PNG or JPEG image")
	}

	key := fmt.Sprintf("avatars/%d/%s%s", id, uuid.NewString(), ext)
	body := io.MultiReader(bytes.NewReader(head), r)
	if err := s.storage.Upload(ctx, key, body, size, contentType); err != nil {
		s.logger.Error("User service: failed to upload avatar",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.userStore.SetAvatar(ctx, id, key); err != nil {
		s.removeAvatar(ctx, id, key)
		return model.User{}, fmt.Errorf("failed to save avatar key: %w", err)
	}

	if user.AvatarKey != nil {
		s.removeAvatar(ctx, id, *user.AvatarKey)
	}

	user.AvatarKey = &key
	s.logger.Info("User service: avatar uploaded",
		"user_id", id,
		"key", key)
	return user, nil
}

// Avatar opens the user's avatar image. It returns model.ErrNotFound when
// the user has none.
func (s *User) Avatar(ctx context.Context, id int64) (io.ReadCloser, model.ObjectInfo, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	if user.AvatarKey == nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("avatar of user %d: %w", id, model.ErrNotFound)
	}

	rc, info, err := s.storage.Download(ctx, *user.AvatarKey)
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to download avatar: %w", err)
	}
	return rc, info, nil
}

func (s *User) removeAvatar(ctx context.Context, id int64, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("User service: failed to delete avatar object",
			"user_id", id,
			"key", key,
			"error", err.Error())
	}
}
