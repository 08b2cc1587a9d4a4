package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-stock/internal/config"
	"mini-stock/internal/database"
	"mini-stock/internal/handler"
	"mini-stock/internal/repository"
	"mini-stock/internal/router"
	"mini-stock/internal/seed"
	"mini-stock/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// store holds the repositories of whichever driver is configured.
type store struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	close      func()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("driver", cfg.Database.Driver).Msg("starting mini-stock web server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer st.close()

	if cfg.Seed.CategoriesFile != "" {
		if err := seedCategories(ctx, cfg, st.categories, logger); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	productService := service.NewProductService(st.products, logger)
	categoryService := service.NewCategoryService(st.categories, logger)

	mux := router.New(router.Handlers{
		Web:        handler.NewWebHandler(productService, categoryService, logger),
		Products:   handler.NewProductHandler(productService, logger),
		Categories: handler.NewCategoryHandler(categoryService, logger),
	}, cfg.Auth.APIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// openStore connects to the configured database and ensures the schema exists.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.EnsurePostgresSchema(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return postgresStore(pool, logger), nil

	default:
		db, err := database.OpenSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.EnsureSchema(ctx, db, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return sqliteStore(db, logger), nil
	}
}

func postgresStore(pool *pgxpool.Pool, logger zerolog.Logger) *store {
	return &store{
		categories: repository.NewCategoryRepository(pool, logger),
		products:   repository.NewProductRepository(pool, logger),
		close:      pool.Close,
	}
}

func sqliteStore(db *sql.DB, logger zerolog.Logger) *store {
	return &store{
		categories: repository.NewSQLiteCategoryRepository(db, logger),
		products:   repository.NewSQLiteProductRepository(db, logger),
		close: func() {
			if err := db.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close database")
			}
		},
	}
}

// seedCategories fills an empty category table, trying S3 first when enabled.
func seedCategories(ctx context.Context, cfg *config.Config, categories repository.CategoryRepository, logger zerolog.Logger) error {
	fileLoader := seed.NewFileLoader(logger)

	var s3Loader seed.Loader
	if cfg.S3.Enabled {
		loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = loader
		}
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)

	_, err := seed.NewCategorySeeder(loader, categories, logger).Seed(ctx, cfg.Seed.CategoriesFile)
	return err
}
