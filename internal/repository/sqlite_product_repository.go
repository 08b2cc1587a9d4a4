package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"mini-stock/internal/model"

	"github.com/rs/zerolog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// sqliteProductRepository implements ProductRepository on a SQLite database.
type sqliteProductRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteProductRepository creates a SQLite-backed product repository.
func NewSQLiteProductRepository(db *sql.DB, logger zerolog.Logger) ProductRepository {
	return &sqliteProductRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Str("driver", "sqlite").Logger(),
	}
}

func (r *sqliteProductRepository) Add(ctx context.Context, product *model.Product) (int64, error) {
	query := `
		INSERT INTO products (name, description, unit_price, stock_quantity, category_id)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.Description,
		product.UnitPrice,
		product.StockQuantity,
		product.CategoryID,
	)
	if err != nil {
		if isSQLiteForeignKeyViolation(err) {
			r.logger.Warn().Err(err).Str("name", product.Name).Msg("product references a missing category")
			return 0, fmt.Errorf("%w: %w", model.ErrCategoryNotFound, err)
		}
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read product id: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product inserted")
	return id, nil
}

func (r *sqliteProductRepository) List(ctx context.Context) ([]model.ProductListing, error) {
	query := `
		SELECT p.id, p.name, p.description, p.unit_price, p.stock_quantity, c.name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.id
	`

	rows, err := r.db.QueryContext(ctx, query)
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

func isSQLiteForeignKeyViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}

	// Without extended result codes only the primary code is reported.
	return code&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(sqliteErr.Error(), "FOREIGN KEY")
}
