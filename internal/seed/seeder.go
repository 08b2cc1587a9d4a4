package seed

import (
	"context"
	"fmt"

	"mini-stock/internal/repository"

	"github.com/rs/zerolog"
)

// CategorySeeder fills an empty category table from a seed file.
type CategorySeeder struct {
	loader     Loader
	categories repository.CategoryRepository
	logger     zerolog.Logger
}

// NewCategorySeeder creates a new category seeder.
func NewCategorySeeder(loader Loader, categories repository.CategoryRepository, logger zerolog.Logger) *CategorySeeder {
	return &CategorySeeder{
		loader:     loader,
		categories: categories,
		logger:     logger.With().Str("component", "category-seeder").Logger(),
	}
}

// Seed adds every name from file, in file order, when no category exists yet.
// It returns the number of categories added; zero when the table was not empty.
func (s *CategorySeeder) Seed(ctx context.Context, file string) (int, error) {
	existing, err := s.categories.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing categories: %w", err)
	}

	if len(existing) > 0 {
		s.logger.Info().
			Int("existing", len(existing)).
			Msg("categories already present, skipping seed")
		return 0, nil
	}

	names, err := s.loader.Load(ctx, file)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed file: %w", err)
	}

	for i, name := range names {
		if _, err := s.categories.Add(ctx, name); err != nil {
			return i, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}

	s.logger.Info().
		Str("file", file).
		Int("added", len(names)).
		Msg("categories seeded")

	return len(names), nil
}
