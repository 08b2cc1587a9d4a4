package service

import (
	"context"
	"fmt"

	"mini-stock/internal/model"
	"mini-stock/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// AddCategory stores a category. Names are not validated and may repeat.
func (s *categoryService) AddCategory(ctx context.Context, name string) (int64, error) {
	id, err := s.categoryRepo.Add(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to add category")
		return 0, fmt.Errorf("failed to add category: %w", err)
	}

	s.logger.Info().Int64("category_id", id).Str("name", name).Msg("category added")

	return id, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")

	return categories, nil
}
