package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/clinic-server/internal/api/http/context"
	"github.com/dtroode/clinic-server/internal/api/http/handler"
	"github.com/dtroode/clinic-server/internal/api/http/response"
	"github.com/dtroode/clinic-server/internal/mocks"
	"github.com/dtroode/clinic-server/internal/model"
	"github.com/dtroode/clinic-server/internal/password"
	"github.com/dtroode/clinic-server/internal/revocation"
	"github.com/dtroode/clinic-server/internal/service"
	"github.com/dtroode/clinic-server/internal/testutil"
	"github.com/dtroode/clinic-server/internal/token"
)

const cookieName = "refresh_token"

type healthyDB struct{}

func (healthyDB) Ping(context.Context) error { return nil }

type app struct {
	handler http.Handler
	users   *mocks.UserStore
}

func newApp(t *testing.T) *app {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	manager, err := token.NewJWT("router-secret", "HS256", 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	registry := revocation.NewRegistry()
	users := mocks.NewUserStore(t)
	hasher := password.NewBcryptHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	patient := model.User{ID: 1, Email: "p@clinic.test", PasswordHash: hash, FullName: "Pat", Role: model.RolePatient}
	users.On("GetByEmail", mock.Anything, "p@clinic.test").Return(patient, nil).Maybe()
	users.On("GetByID", mock.Anything, int64(1)).Return(patient, nil).Maybe()

	session := service.NewSession(manager, registry, users, lg)
	tokens := service.NewTokenService(manager, registry, session, lg)

	r := New(Services{
		Auth:        service.NewAuth(users, hasher, tokens, lg),
		Tokens:      tokens,
		Users:       service.NewUser(users, mocks.NewAvatarStorage(t), lg),
		Directory:   service.NewDirectory(mocks.NewBranchStore(t), mocks.NewSectionStore(t), mocks.NewRoomStore(t), lg),
		Specialties: service.NewSpecialty(mocks.NewSpecialtyStore(t), lg),
		Schedules:   service.NewSchedule(mocks.NewScheduleStore(t), users, lg),
		DB:          healthyDB{},
	}, Options{
		Cookie:         handler.CookieConfig{Name: cookieName, MaxAge: 7 * 24 * time.Hour},
		RequestTimeout: time.Second,
	}, httpctx.NewManager(), lg)

	return &app{handler: r.Register(), users: users}
}

type request struct {
	method string
	path   string
	body   string
	access string
	cookie string
}

func (a *app) do(rq request) *httptest.ResponseRecorder {
	req := httptest.NewRequest(rq.method, rq.path, strings.NewReader(rq.body))
	if rq.access != "" {
		req.Header.Set("Authorization", "Bearer "+rq.access)
	}
	if rq.cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: rq.cookie})
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func accessToken(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c.Value
		}
	}
	t.Fatalf("no %s cookie in response", cookieName)
	return ""
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error.Message
}

func TestRouter_TokenLifecycle(t *testing.T) {
	a := newApp(t)

	rec := a.do(request{method: http.MethodPost, path: "/api/v1/auth/login", body: `{"email":"p@clinic.test","password":"secret123"}`})
	require.Equal(t, http.StatusOK, rec.Code)
	access1 := accessToken(t, rec)
	refresh1 := refreshCookie(t, rec)

	rec = a.do(request{method: http.MethodGet, path: "/api/v1/users/me", access: access1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"p@clinic.test"`)

	rec = a.do(request{method: http.MethodGet, path: "/api/v1/users/me", access: refresh1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token type mismatch", errorMessage(t, rec))

	rec = a.do(request{method: http.MethodPost, path: "/api/v1/auth/refresh", access: access1, cookie: refresh1})
	require.Equal(t, http.StatusOK, rec.Code)
	access2 := accessToken(t, rec)
	refresh2 := refreshCookie(t, rec)
	assert.NotEqual(t, refresh1, refresh2)

	rec = a.do(request{method: http.MethodGet, path: "/api/v1/users/me", access: access1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token is blocked", errorMessage(t, rec))

	rec = a.do(request{method: http.MethodPost, path: "/api/v1/auth/refresh", cookie: refresh1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	rec = a.do(request{method: http.MethodPost, path: "/api/v1/auth/logout", access: access2, cookie: refresh2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(request{method: http.MethodGet, path: "/api/v1/users/me", access: access2})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(request{method: http.MethodPost, path: "/api/v1/auth/refresh", cookie: refresh2})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	a := newApp(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users"},
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/branches"},
		{http.MethodPost, "/api/v1/sections"},
		{http.MethodGet, "/api/v1/rooms/1"},
		{http.MethodDelete, "/api/v1/specialties/1"},
		{http.MethodPatch, "/api/v1/schedules/1"},
		{http.MethodPut, "/api/v1/users/1/avatar"},
		{http.MethodPost, "/api/v1/auth/logout"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := a.do(request{method: p.method, path: p.path})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.NotEmpty(t, rec.Header().Get(response.RequestIDHeader))
		})
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	a := newApp(t)

	rec := a.do(request{method: http.MethodGet, path: "/healthz"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(request{method: http.MethodPost, path: "/api/v1/auth/login", body: `{"email":"p@clinic.test","password":"wrong-password"}`})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "incorrect email or password", errorMessage(t, rec))

	rec = a.do(request{method: http.MethodPost, path: "/api/v1/auth/refresh"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no refresh token", errorMessage(t, rec))
}

func TestRouter_UnknownRoute(t *testing.T) {
	a := newApp(t)
	rec := a.do(request{method: http.MethodGet, path: "/api/v2/users"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(response.RequestIDHeader))
}
