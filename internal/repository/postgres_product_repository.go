package repository

import (
	"context"
	"errors"
	"fmt"

	"mini-stock/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// foreignKeyViolation is the PostgreSQL SQLSTATE for a foreign key violation.
const foreignKeyViolation = "23503"

// productRepository implements ProductRepository using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Str("driver", "postgres").Logger(),
	}
}

// Add inserts a product and returns its generated ID.
func (r *productRepository) Add(ctx context.Context, product *model.Product) (int64, error) {
	query := `
		INSERT INTO products (name, description, unit_price, stock_quantity, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.UnitPrice,
		product.StockQuantity,
		product.CategoryID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			r.logger.Warn().Err(err).Str("name", product.Name).Msg("product references a missing category")
			return 0, fmt.Errorf("%w: %w", model.ErrCategoryNotFound, err)
		}
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product inserted")
	return id, nil
}

// List returns every product joined with its category name, ordered by ID.
func (r *productRepository) List(ctx context.Context) ([]model.ProductListing, error) {
	query := `
		SELECT p.id, p.name, p.description, p.unit_price, p.stock_quantity, c.name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.ProductListing{}
	for rows.Next() {
		var p model.ProductListing
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.UnitPrice, &p.StockQuantity, &p.CategoryName)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
