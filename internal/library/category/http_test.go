// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/library/category"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// asUser injects claims the way middleware.Authenticate would.
func asUser(userID string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: userID})
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func TestHTTP_CreateListDelete(t *testing.T) {
	service := category.NewService(newMemoryRepository(), bookTags{alice: {"Fiction"}})
	router := chi.NewRouter()
	router.Mount("/api/categories", category.NewHandler(service).Routes())
	handler := asUser(alice, router)

	create := httptest.NewRecorder()
	handler.ServeHTTP(create, httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Fiction","color":"#EF4444"}`)))
	require.Equal(t, http.StatusCreated, create.Code, create.Body.String())
	assert.Contains(t, create.Body.String(), `"book_count":1`)

	duplicate := httptest.NewRecorder()
	handler.ServeHTTP(duplicate, httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Fiction"}`)))
	assert.Equal(t, http.StatusConflict, duplicate.Code)

	list := httptest.NewRecorder()
	handler.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), `"name":"Fiction"`)

	missing := httptest.NewRecorder()
	handler.ServeHTTP(missing, httptest.NewRequest(http.MethodDelete, "/api/categories/0190f1d2-0000-7000-8000-0000000000ff", nil))
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
