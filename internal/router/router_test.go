package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"mini-stock/internal/config"
	"mini-stock/internal/database"
	"mini-stock/internal/handler"
	"mini-stock/internal/middleware"
	"mini-stock/internal/repository"
	"mini-stock/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, apiKey string) http.Handler {
	t.Helper()

	ctx := context.Background()
	logger := zerolog.Nop()

	db, err := database.OpenSQLite(ctx, config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "inventory.db"),
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(ctx, db, logger))

	productService := service.NewProductService(repository.NewSQLiteProductRepository(db, logger), logger)
	categoryService := service.NewCategoryService(repository.NewSQLiteCategoryRepository(db, logger), logger)

	return New(Handlers{
		Web:        handler.NewWebHandler(productService, categoryService, logger),
		Products:   handler.NewProductHandler(productService, logger),
		Categories: handler.NewCategoryHandler(categoryService, logger),
	}, apiKey, logger)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, "secret")

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		apiKey         string
		expectedStatus int
	}{
		{name: "Health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "Form page", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK},
		{name: "Unknown page", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
		{name: "API without key", method: http.MethodGet, path: "/api/products", expectedStatus: http.StatusUnauthorized},
		{name: "API with key", method: http.MethodGet, path: "/api/products", apiKey: "secret", expectedStatus: http.StatusOK},
		{name: "API create", method: http.MethodPost, path: "/api/categories", body: `{"name":"Tools"}`, apiKey: "secret", expectedStatus: http.StatusCreated},
		{name: "Form post does not need key", method: http.MethodPost, path: "/categories", body: "name=Garden", expectedStatus: http.StatusSeeOther},
		{name: "Preflight", method: http.MethodOptions, path: "/api/products", expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.method == http.MethodPost && !strings.HasPrefix(tt.path, "/api/") {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}
