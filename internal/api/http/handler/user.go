package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

// UserService defines user management and avatar operations.
type UserService interface {
	List(ctx context.Context, filter model.UserFilter, page model.Page) ([]model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, id int64, patch model.UserPatch) (model.User, error)
	Delete(ctx context.Context, id int64) error
	UploadAvatar(ctx context.Context, id int64, r io.Reader, size int64) (model.User, error)
	Avatar(ctx context.Context, id int64) (io.ReadCloser, model.ObjectInfo, error)
}

// User handles the user endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	maxAvatarSize  int64
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, maxAvatarSize int64, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		maxAvatarSize:  maxAvatarSize,
		logger:         logger,
	}
}

// Me returns the authenticated user.
func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, model.NewAuthError(model.ErrInvalidToken, "not authenticated"))
		return
	}
	response.WriteJSON(w, http.StatusOK, user)
}

func (h *User) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var filter model.UserFilter
	if raw := r.URL.Query().Get("role"); raw != "" {
		role := model.Role(raw)
		filter.Role = &role
	}

	users, err := h.userService.List(r.Context(), filter, page)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, users)
}

func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, user)
}

func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var patch model.UserPatch
	if err := decodeStrict(w, r, &patch); err != nil {
		response.WriteError(w, r, err)
		return
	}

	user, err := h.userService.Update(r.Context(), id, patch)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, user)
}

func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadAvatar stores the raw request body as the user's avatar. The body
// length must be known up front.
func (h *User) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if r.ContentLength < 0 {
		response.WriteError(w, r, response.BadRequest("Content-Length is required"))
		return
	}
	if r.ContentLength > h.maxAvatarSize {
		response.WriteError(w, r, model.NewValidationError("avatar", "is too large"))
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxAvatarSize)
	user, err := h.userService.UploadAvatar(r.Context(), id, body, r.ContentLength)
	if err != nil {
		h.logger.Debug("User handler: avatar upload failed",
			"user_id", id,
			"error", err.Error())
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, user)
}

// Avatar streams the user's avatar image.
func (h *User) Avatar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	rc, info, err := h.userService.Avatar(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", info.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("User handler: avatar stream interrupted",
			"user_id", id,
			"error", err.Error())
	}
}
