package service

import (
	"context"
	"fmt"
	"math"

	"mini-stock/internal/model"
	"mini-stock/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// AddProduct validates and stores a new product.
// A category ID of zero or less means the product has no category.
func (s *productService) AddProduct(ctx context.Context, req *model.ProductRequest) (int64, error) {
	if err := s.validateProductRequest(req); err != nil {
		return 0, err
	}

	product := &model.Product{
		Name:          req.Name,
		Description:   req.Description,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
	}
	if req.CategoryID != nil && *req.CategoryID > 0 {
		categoryID := *req.CategoryID
		product.CategoryID = &categoryID
	}

	id, err := s.productRepo.Add(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to add product")
		return 0, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", id).
		Str("name", product.Name).
		Msg("product added")

	return id, nil
}

// ListProducts retrieves every product with its category name.
func (s *productService) ListProducts(ctx context.Context) ([]model.ProductListing, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

func (s *productService) validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return model.ErrNilRequest
	}

	if math.IsNaN(req.UnitPrice) || math.IsInf(req.UnitPrice, 0) || req.UnitPrice < 0 {
		s.logger.Warn().Float64("unit_price", req.UnitPrice).Msg("invalid unit price")
		return model.ErrInvalidPrice
	}

	if req.StockQuantity < 0 {
		s.logger.Warn().Int("stock_quantity", req.StockQuantity).Msg("invalid stock quantity")
		return model.ErrInvalidQuantity
	}

	return nil
}
