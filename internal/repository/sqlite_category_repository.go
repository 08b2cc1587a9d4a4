package repository

import (
	"context"
	"database/sql"
	"fmt"

	"mini-stock/internal/model"

	"github.com/rs/zerolog"
)

// sqliteCategoryRepository implements CategoryRepository on a SQLite database.
type sqliteCategoryRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteCategoryRepository creates a SQLite-backed category repository.
func NewSQLiteCategoryRepository(db *sql.DB, logger zerolog.Logger) CategoryRepository {
	return &sqliteCategoryRepository{
		db:     db,
		logger: logger.With().Str("repository", "category").Str("driver", "sqlite").Logger(),
	}
}

func (r *sqliteCategoryRepository) Add(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		r.logger.Error().Err(err).Str("name", name).Msg("failed to insert category")
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read category id: %w", err)
	}

	r.logger.Debug().Int64("category_id", id).Msg("category inserted")
	return id, nil
}

func (r *sqliteCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
