package repository

import (
	"context"
	"testing"

	"mini-stock/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend bundles both repositories over one freshly initialised store.
type backend struct {
	categories CategoryRepository
	products   ProductRepository
	// exec runs raw SQL outside the repositories.
	exec func(t *testing.T, query string)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

// runRepositoryTests exercises the behaviour shared by every storage driver.
func runRepositoryTests(t *testing.T, setup func(t *testing.T) backend) {
	ctx := context.Background()

	t.Run("AddCategory returns a fresh id", func(t *testing.T) {
		b := setup(t)

		id, err := b.categories.Add(ctx, "Electronics")
		require.NoError(t, err)
		assert.Positive(t, id)

		categories, err := b.categories.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, model.Category{ID: id, Name: "Electronics"}, categories[0])
	})

	t.Run("Categories are listed in insertion order", func(t *testing.T) {
		b := setup(t)

		first, err := b.categories.Add(ctx, "Tools")
		require.NoError(t, err)
		second, err := b.categories.Add(ctx, "Garden")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)

		categories, err := b.categories.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Category{
			{ID: first, Name: "Tools"},
			{ID: second, Name: "Garden"},
		}, categories)
	})

	t.Run("Duplicate and empty category names are stored", func(t *testing.T) {
		b := setup(t)

		_, err := b.categories.Add(ctx, "Tools")
		require.NoError(t, err)
		_, err = b.categories.Add(ctx, "Tools")
		require.NoError(t, err)
		_, err = b.categories.Add(ctx, "")
		require.NoError(t, err)

		categories, err := b.categories.List(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 3)
	})

	t.Run("Empty store lists nothing", func(t *testing.T) {
		b := setup(t)

		categories, err := b.categories.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, categories)

		products, err := b.products.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("AddProduct with category", func(t *testing.T) {
		b := setup(t)

		catID, err := b.categories.Add(ctx, "Electronics")
		require.NoError(t, err)

		id, err := b.products.Add(ctx, &model.Product{
			Name:          "Widget",
			Description:   strPtr("desc"),
			UnitPrice:     9.99,
			StockQuantity: 5,
			CategoryID:    int64Ptr(catID),
		})
		require.NoError(t, err)

		products, err := b.products.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)

		p := products[0]
		assert.Equal(t, id, p.ID)
		assert.Equal(t, "Widget", p.Name)
		require.NotNil(t, p.Description)
		assert.Equal(t, "desc", *p.Description)
		assert.Equal(t, 9.99, p.UnitPrice)
		assert.Equal(t, 5, p.StockQuantity)
		require.NotNil(t, p.CategoryName)
		assert.Equal(t, "Electronics", *p.CategoryName)
	})

	t.Run("AddProduct without category", func(t *testing.T) {
		b := setup(t)

		_, err := b.products.Add(ctx, &model.Product{Name: "Loose", UnitPrice: 1, StockQuantity: 0})
		require.NoError(t, err)

		products, err := b.products.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Nil(t, products[0].CategoryName)
		assert.Nil(t, products[0].Description)
	})

	t.Run("AddProduct with unknown category", func(t *testing.T) {
		b := setup(t)

		_, err := b.products.Add(ctx, &model.Product{Name: "Ghost", UnitPrice: 1, CategoryID: int64Ptr(999)})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrCategoryNotFound)

		products, err := b.products.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Products are listed in insertion order", func(t *testing.T) {
		b := setup(t)

		first, err := b.products.Add(ctx, &model.Product{Name: "Zeta", UnitPrice: 2})
		require.NoError(t, err)
		second, err := b.products.Add(ctx, &model.Product{Name: "Alpha", UnitPrice: 3})
		require.NoError(t, err)

		products, err := b.products.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, first, products[0].ID)
		assert.Equal(t, "Zeta", products[0].Name)
		assert.Equal(t, second, products[1].ID)
		assert.Equal(t, "Alpha", products[1].Name)
	})

	t.Run("Unrelated inserts leave earlier rows unchanged", func(t *testing.T) {
		b := setup(t)

		catID, err := b.categories.Add(ctx, "Tools")
		require.NoError(t, err)
		_, err = b.products.Add(ctx, &model.Product{Name: "Hammer", UnitPrice: 12.5, StockQuantity: 3, CategoryID: int64Ptr(catID)})
		require.NoError(t, err)

		before, err := b.products.List(ctx)
		require.NoError(t, err)

		_, err = b.categories.Add(ctx, "Garden")
		require.NoError(t, err)
		_, err = b.products.Add(ctx, &model.Product{Name: "Rake", UnitPrice: 7, StockQuantity: 1})
		require.NoError(t, err)

		after, err := b.products.List(ctx)
		require.NoError(t, err)
		require.Len(t, after, 2)
		assert.Equal(t, before[0], after[0])
	})

	t.Run("Deleted category shows as no category", func(t *testing.T) {
		b := setup(t)

		catID, err := b.categories.Add(ctx, "Seasonal")
		require.NoError(t, err)
		_, err = b.products.Add(ctx, &model.Product{Name: "Lantern", UnitPrice: 4, CategoryID: int64Ptr(catID)})
		require.NoError(t, err)

		b.exec(t, "DELETE FROM categories")

		products, err := b.products.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Nil(t, products[0].CategoryName)
	})
}
