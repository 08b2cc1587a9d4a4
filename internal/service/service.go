package service

import (
	"context"

	"mini-stock/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// AddProduct validates and stores a new product, returning its ID.
	AddProduct(ctx context.Context, req *model.ProductRequest) (int64, error)

	// ListProducts retrieves every product with its category name.
	ListProducts(ctx context.Context) ([]model.ProductListing, error)
}

// CategoryService defines operations for category management.
type CategoryService interface {
	// AddCategory stores a new category, returning its ID.
	AddCategory(ctx context.Context, name string) (int64, error)

	// ListCategories retrieves every category.
	ListCategories(ctx context.Context) ([]model.Category, error)
}
