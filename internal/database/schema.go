package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Tables lists the tables created by the schema initializer, in creation order.
var Tables = []string{"categories", "products", "orders", "suppliers"}

// Statements only ever create missing tables; existing structure is never altered.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		unit_price REAL NOT NULL,
		stock_quantity INTEGER NOT NULL DEFAULT 0,
		category_id INTEGER,
		FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER,
		quantity INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		contact TEXT
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		unit_price DOUBLE PRECISION NOT NULL,
		stock_quantity INTEGER NOT NULL DEFAULT 0,
		category_id BIGINT REFERENCES categories (id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT REFERENCES products (id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contact TEXT
	)`,
}

// EnsureSchema creates the inventory tables in a SQLite database if they are absent.
// It is safe to call on every start.
func EnsureSchema(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	for i, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error().Err(err).Str("table", Tables[i]).Msg("failed to create table")
			return fmt.Errorf("failed to create table %s: %w", Tables[i], err)
		}
	}

	logger.Info().Strs("tables", Tables).Msg("database schema ensured")
	return nil
}

// EnsurePostgresSchema is the PostgreSQL counterpart of EnsureSchema.
func EnsurePostgresSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	for i, stmt := range postgresSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Error().Err(err).Str("table", Tables[i]).Msg("failed to create table")
			return fmt.Errorf("failed to create table %s: %w", Tables[i], err)
		}
	}

	logger.Info().Strs("tables", Tables).Msg("database schema ensured")
	return nil
}
