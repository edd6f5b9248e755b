package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/clinic-server/internal/api/http/context"
	"github.com/dtroode/clinic-server/internal/mocks"
	"github.com/dtroode/clinic-server/internal/model"
	"github.com/dtroode/clinic-server/internal/service"
	"github.com/dtroode/clinic-server/internal/testutil"
)

type userFixture struct {
	users   *mocks.UserStore
	storage *mocks.AvatarStorage
	ctxMgr  *httpctx.Manager
	h       *User
}

func newUserFixture(t *testing.T) userFixture {
	f := userFixture{
		users:   mocks.NewUserStore(t),
		storage: mocks.NewAvatarStorage(t),
		ctxMgr:  httpctx.NewManager(),
	}
	lg := testutil.MakeNoopLogger()
	f.h = NewUser(service.NewUser(f.users, f.storage, lg), f.ctxMgr, service.MaxAvatarSize, lg)
	return f
}

func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
}

func TestUser_Me(t *testing.T) {
	f := newUserFixture(t)
	me := model.User{ID: 5, Email: "me@clinic.test", Role: model.RolePatient}

	rec := serve(http.MethodGet, "/users/me", "/users/me", nil, f.h.Me, func(r *http.Request) {
		*r = *r.WithContext(f.ctxMgr.SetUserToContext(r.Context(), me))
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
}

func TestUser_Me_NoUser(t *testing.T) {
	f := newUserFixture(t)
	rec := serve(http.MethodGet, "/users/me", "/users/me", nil, f.h.Me)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUser_List(t *testing.T) {
	f := newUserFixture(t)
	role := model.RoleDoctor
	f.users.On("List", mock.Anything, model.UserFilter{Role: &role}, model.Page{Limit: 10, Offset: 20}).
		Return([]model.User{{ID: 1, Role: role}}, nil)

	rec := serve(http.MethodGet, "/users", "/users?role=doctor&limit=10&offset=20", nil, f.h.List)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestUser_List_BadQuery(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"non numeric limit", "/users?limit=ten", http.StatusBadRequest},
		{"limit too large", "/users?limit=501", http.StatusUnprocessableEntity},
		{"negative offset", "/users?offset=-1", http.StatusUnprocessableEntity},
		{"unknown role", "/users?role=nurse", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			rec := serve(http.MethodGet, "/users", tt.target, nil, f.h.List)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUser_Get(t *testing.T) {
	f := newUserFixture(t)
	f.users.On("GetByID", mock.Anything, int64(4)).Return(model.User{ID: 4}, nil)
	f.users.On("GetByID", mock.Anything, int64(404)).Return(model.User{}, model.ErrNotFound)

	rec := serve(http.MethodGet, "/users/{id}", "/users/4", nil, f.h.Get)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(http.MethodGet, "/users/{id}", "/users/404", nil, f.h.Get)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Code)

	rec = serve(http.MethodGet, "/users/{id}", "/users/abc", nil, f.h.Get)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(http.MethodGet, "/users/{id}", "/users/0", nil, f.h.Get)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUser_Update(t *testing.T) {
	f := newUserFixture(t)
	patch := model.UserPatch{Email: strPtr("new@clinic.test"), Bio: strPtr("cardiologist")}
	f.users.On("Update", mock.Anything, int64(4), patch).
		Return(model.User{ID: 4, Email: "new@clinic.test"}, nil)

	rec := serve(http.MethodPatch, "/users/{id}", "/users/4",
		jsonBody(`{"email":"  NEW@clinic.test ","bio":"cardiologist"}`), f.h.Update)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(http.MethodPatch, "/users/{id}", "/users/4", jsonBody(`{"email":"not-an-email"}`), f.h.Update)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve(http.MethodPatch, "/users/{id}", "/users/4", jsonBody(`{"password":"x"}`), f.h.Update)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUser_Delete(t *testing.T) {
	f := newUserFixture(t)
	f.users.On("GetByID", mock.Anything, int64(4)).Return(model.User{ID: 4}, nil)
	f.users.On("Delete", mock.Anything, int64(4)).Return(nil)

	rec := serve(http.MethodDelete, "/users/{id}", "/users/4", nil, f.h.Delete)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUser_UploadAvatar(t *testing.T) {
	f := newUserFixture(t)
	img := pngBytes()

	f.users.On("GetByID", mock.Anything, int64(4)).Return(model.User{ID: 4}, nil)
	f.storage.On("Upload", mock.Anything,
		mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "avatars/4/") && strings.HasSuffix(key, ".png") }),
		mock.Anything, int64(len(img)), "image/png").Return(nil)
	f.users.On("SetAvatar", mock.Anything, int64(4), mock.AnythingOfType("string")).Return(nil)

	rec := serve(http.MethodPut, "/users/{id}/avatar", "/users/4/avatar", bytes.NewReader(img), f.h.UploadAvatar)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUser_UploadAvatar_Rejected(t *testing.T) {
	t.Run("not an image", func(t *testing.T) {
		f := newUserFixture(t)
		f.users.On("GetByID", mock.Anything, int64(4)).Return(model.User{ID: 4}, nil)

		rec := serve(http.MethodPut, "/users/{id}/avatar", "/users/4/avatar",
			strings.NewReader("plain text, not a picture"), f.h.UploadAvatar)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("too large", func(t *testing.T) {
		f := newUserFixture(t)
		rec := serve(http.MethodPut, "/users/{id}/avatar", "/users/4/avatar",
			bytes.NewReader(make([]byte, service.MaxAvatarSize+1)), f.h.UploadAvatar)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown length", func(t *testing.T) {
		f := newUserFixture(t)
		rec := serve(http.MethodPut, "/users/{id}/avatar", "/users/4/avatar",
			io.NopCloser(bytes.NewReader(pngBytes())), f.h.UploadAvatar, func(r *http.Request) {
				r.ContentLength = -1
			})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUser_Avatar(t *testing.T) {
	f := newUserFixture(t)
	key := "avatars/4/a.png"
	f.users.On("GetByID", mock.Anything, int64(4)).Return(model.User{ID: 4, AvatarKey: &key}, nil)
	f.storage.On("Download", mock.Anything, key).
		Return(io.NopCloser(strings.NewReader("img")), model.ObjectInfo{Size: 3, ContentType: "image/png"}, nil)

	rec := serve(http.MethodGet, "/users/{id}/avatar", "/users/4/avatar", nil, f.h.Avatar)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, "img", rec.Body.String())
}

func TestUser_Avatar_Missing(t *testing.T) {
	f := newUserFixture(t)
	f.users.On("GetByID", mock.Anything, int64(4)).Return(model.User{ID: 4}, nil)

	rec := serve(http.MethodGet, "/users/{id}/avatar", "/users/4/avatar", nil, f.h.Avatar)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
