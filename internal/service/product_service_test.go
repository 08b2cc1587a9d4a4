package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"mini-stock/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestProductService_AddProduct(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *model.ProductRequest
		setupMock   func(m *MockProductRepository)
		expectedID  int64
		expectedErr error
	}{
		{
			name: "Success with category",
			req: &model.ProductRequest{
				Name:          "Widget",
				Description:   strPtr("desc"),
				UnitPrice:     9.99,
				StockQuantity: 5,
				CategoryID:    int64Ptr(3),
			},
			setupMock: func(m *MockProductRepository) {
				m.On("Add", ctx, mock.MatchedBy(func(p *model.Product) bool {
					return p.Name == "Widget" &&
						p.Description != nil && *p.Description == "desc" &&
						p.UnitPrice == 9.99 &&
						p.StockQuantity == 5 &&
						p.CategoryID != nil && *p.CategoryID == 3
				})).Return(int64(1), nil)
			},
			expectedID: 1,
		},
		{
			name: "Success without category",
			req:  &model.ProductRequest{Name: "Loose", UnitPrice: 0, StockQuantity: 0},
			setupMock: func(m *MockProductRepository) {
				m.On("Add", ctx, mock.MatchedBy(func(p *model.Product) bool {
					return p.CategoryID == nil
				})).Return(int64(7), nil)
			},
			expectedID: 7,
		},
		{
			name: "Zero category id means no category",
			req:  &model.ProductRequest{Name: "Loose", UnitPrice: 1, CategoryID: int64Ptr(0)},
			setupMock: func(m *MockProductRepository) {
				m.On("Add", ctx, mock.MatchedBy(func(p *model.Product) bool {
					return p.CategoryID == nil
				})).Return(int64(2), nil)
			},
			expectedID: 2,
		},
		{
			name:        "Nil request",
			req:         nil,
			setupMock:   func(m *MockProductRepository) {},
			expectedErr: model.ErrNilRequest,
		},
		{
			name:        "Negative price",
			req:         &model.ProductRequest{Name: "Widget", UnitPrice: -0.01},
			setupMock:   func(m *MockProductRepository) {},
			expectedErr: model.ErrInvalidPrice,
		},
		{
			name:        "NaN price",
			req:         &model.ProductRequest{Name: "Widget", UnitPrice: math.NaN()},
			setupMock:   func(m *MockProductRepository) {},
			expectedErr: model.ErrInvalidPrice,
		},
		{
			name:        "Negative quantity",
			req:         &model.ProductRequest{Name: "Widget", UnitPrice: 1, StockQuantity: -1},
			setupMock:   func(m *MockProductRepository) {},
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name: "Unknown category",
			req:  &model.ProductRequest{Name: "Ghost", UnitPrice: 1, CategoryID: int64Ptr(99)},
			setupMock: func(m *MockProductRepository) {
				m.On("Add", ctx, mock.Anything).
					Return(int64(0), fmt.Errorf("%w: %w", model.ErrCategoryNotFound, errors.New("FOREIGN KEY constraint failed")))
			},
			expectedErr: model.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			tt.setupMock(mockRepo)

			svc := NewProductService(mockRepo, logger)
			id, err := svc.AddProduct(ctx, tt.req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_AddProduct_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockRepo.On("Add", ctx, mock.Anything).Return(int64(0), errors.New("database is locked"))

	svc := NewProductService(mockRepo, zerolog.Nop())
	_, err := svc.AddProduct(ctx, &model.ProductRequest{Name: "Widget", UnitPrice: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add product")

	var domainErr *model.DomainError
	assert.False(t, errors.As(err, &domainErr))
}

func TestProductService_ListProducts(t *testing.T) {
	ctx := context.Background()

	listing := []model.ProductListing{
		{ID: 1, Name: "Widget", UnitPrice: 9.99, StockQuantity: 5, CategoryName: strPtr("Electronics")},
		{ID: 2, Name: "Loose", UnitPrice: 1},
	}

	tests := []struct {
		name        string
		mockReturn  []model.ProductListing
		mockError   error
		expectError bool
	}{
		{
			name:       "Success",
			mockReturn: listing,
		},
		{
			name:       "Empty",
			mockReturn: []model.ProductListing{},
		},
		{
			name:        "Repository error",
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			if tt.mockReturn != nil {
				mockRepo.On("List", ctx).Return(tt.mockReturn, tt.mockError)
			} else {
				mockRepo.On("List", ctx).Return(nil, tt.mockError)
			}

			svc := NewProductService(mockRepo, zerolog.Nop())
			products, err := svc.ListProducts(ctx)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to list products")
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
