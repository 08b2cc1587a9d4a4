package repository

import (
	"context"

	"mini-stock/internal/model"
)

// CategoryRepository defines the data access operations for categories.
type CategoryRepository interface {
	// Add inserts a category and returns its generated ID.
	Add(ctx context.Context, name string) (int64, error)

	// List returns every category ordered by ID.
	List(ctx context.Context) ([]model.Category, error)
}

// ProductRepository defines the data access operations for products.
type ProductRepository interface {
	// Add inserts a product and returns its generated ID.
	// Returns model.ErrCategoryNotFound if CategoryID names a missing category.
	Add(ctx context.Context, product *model.Product) (int64, error)

	// List returns every product joined with its category name, ordered by ID.
	List(ctx context.Context) ([]model.ProductListing, error)
}
