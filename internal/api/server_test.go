// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/library/book"
	"github.com/taibuivan/folio/internal/library/category"
	"github.com/taibuivan/folio/internal/library/stats"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/users/auth"
)

type emptyShelf struct{}

func (emptyShelf) ListByUser(context.Context, string) ([]*book.Book, error) { return nil, nil }

type noDays struct{}

func (noDays) Days(context.Context, string) ([]time.Time, error) { return nil, nil }

func newTestRouter(t *testing.T, deps api.HealthDependencies) (http.Handler, *sec.TokenService) {
	t.Helper()

	tokens, err := sec.NewHMACTokenService("0123456789abcdef0123456789abcdef", constants.AuthIssuer)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	cfg := &config.Config{Environment: "development", ServerPort: "0"}
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(auth.NewService(nil, nil, tokens, time.Minute)),
		Book:      book.NewHandler(book.NewService(nil, nil, nil, nil, 1<<20), 1<<20),
		Category:  category.NewHandler(category.NewService(nil, nil)),
		Stats:     stats.NewHandler(stats.NewService(emptyShelf{}, noDays{})),
	}

	return api.NewRouter(t.Context(), cfg, logger, tokens, handlers), tokens
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))

	ready := httptest.NewRecorder()
	router.ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, ready.Code)
	assert.Contains(t, ready.Body.String(), `"ready"`)
}

func TestRouter_ReadyDegraded(t *testing.T) {
	router, _ := newTestRouter(t, api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("connection refused") },
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"degraded"`)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t, api.HealthDependencies{})

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/books"},
		{http.MethodPost, "/api/books/upload"},
		{http.MethodGet, "/api/categories"},
		{http.MethodGet, "/api/stats"},
		{http.MethodGet, "/api/auth/me"},
	}

	for _, tt := range paths {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestRouter_RejectsBadToken(t *testing.T) {
	router, _ := newTestRouter(t, api.HealthDependencies{})

	request := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	request.Header.Set(constants.HeaderAuthorization, "Bearer not-a-jwt")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_AuthenticatedStats(t *testing.T) {
	router, tokens := newTestRouter(t, api.HealthDependencies{})

	token, err := tokens.GenerateAccessToken("0190f1d2-0000-7000-8000-00000000000a", "alice@example.com", time.Minute)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Contains(t, recorder.Body.String(), `"total_books":0`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, api.HealthDependencies{})

	request := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	request.Header.Set("Origin", "http://localhost:5173")
	request.Header.Set("Access-Control-Request-Method", http.MethodGet)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
