package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/clinic-server/internal/api/http/response"
)

// serve routes a single request through a chi router so that path
// parameters are populated.
func serve(method, pattern, target string, body io.Reader, h http.HandlerFunc, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	req := httptest.NewRequest(method, target, body)
	for _, m := range mutate {
		m(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.APIError {
	t.Helper()
	var env response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

type pingerFunc func() error

func (f pingerFunc) Ping(context.Context) error { return f() }
