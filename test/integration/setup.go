package integration

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"mini-stock/internal/config"
	"mini-stock/internal/database"
	"mini-stock/internal/handler"
	"mini-stock/internal/repository"
	"mini-stock/internal/router"
	"mini-stock/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestAPIKey guards the JSON API of every test server.
const TestAPIKey = "test-api-key"

// TestEnv is a fully wired application over a fresh database.
type TestEnv struct {
	Handler    http.Handler
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	// Exec runs raw SQL against the backing database.
	Exec func(t *testing.T, query string)
}

// SetupSQLite wires the application over a SQLite file in a temp directory.
func SetupSQLite(t *testing.T) *TestEnv {
	t.Helper()

	db := OpenSQLiteFile(t, filepath.Join(t.TempDir(), "inventory.db"))
	logger := zerolog.Nop()

	return newTestEnv(
		repository.NewSQLiteCategoryRepository(db, logger),
		repository.NewSQLiteProductRepository(db, logger),
		func(t *testing.T, query string) {
			if _, err := db.Exec(query); err != nil {
				t.Fatalf("failed to exec %q: %v", query, err)
			}
		},
	)
}

// OpenSQLiteFile opens path and ensures the schema, closing it on cleanup.
func OpenSQLiteFile(t *testing.T, path string) *sql.DB {
	t.Helper()

	ctx := context.Background()
	logger := zerolog.Nop()

	db, err := database.OpenSQLite(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, Path: path}, logger)
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.EnsureSchema(ctx, db, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}

// SetupPostgres wires the application over a PostgreSQL test container.
func SetupPostgres(t *testing.T) *TestEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test")
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.EnsurePostgresSchema(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return newTestEnv(
		repository.NewCategoryRepository(pool, logger),
		repository.NewProductRepository(pool, logger),
		func(t *testing.T, query string) {
			if _, err := pool.Exec(ctx, query); err != nil {
				t.Fatalf("failed to exec %q: %v", query, err)
			}
		},
	)
}

func newTestEnv(categories repository.CategoryRepository, products repository.ProductRepository, exec func(t *testing.T, query string)) *TestEnv {
	logger := zerolog.Nop()

	productService := service.NewProductService(products, logger)
	categoryService := service.NewCategoryService(categories, logger)

	return &TestEnv{
		Handler: router.New(router.Handlers{
			Web:        handler.NewWebHandler(productService, categoryService, logger),
			Products:   handler.NewProductHandler(productService, logger),
			Categories: handler.NewCategoryHandler(categoryService, logger),
		}, TestAPIKey, logger),
		Categories: categories,
		Products:   products,
		Exec:       exec,
	}
}
