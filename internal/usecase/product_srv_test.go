package usecase

import (
	"context"
	"testing"

	"shop-api/internal/data/entity"
	"shop-api/internal/data/repository"
	"shop-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductFixture() (*mockCategoryRepo, *mockProductRepo, ProductService) {
	categoryRepo := &mockCategoryRepo{}
	productRepo := &mockProductRepo{}
	repo := &repository.Repository{
		Category: categoryRepo,
		Product:  productRepo,
	}
	svc := NewProductService(repo, zap.NewNop())
	return categoryRepo, productRepo, svc
}

func testCategory() *entity.Category {
	return &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Name:         "Pakaian",
	}
}

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		categoryRepo, productRepo, svc := newProductFixture()

		category := testCategory()
		categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

		resp, err := svc.Create(context.Background(), &request.ProductRequest{
			Name:       "Kaos Polos",
			Price:      decimal.NewFromInt(50000),
			CategoryID: category.ID.String(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Kaos Polos", resp.Name)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		t.Parallel()
		_, productRepo, svc := newProductFixture()

		_, err := svc.Create(context.Background(), &request.ProductRequest{
			Name:       "Kaos Polos",
			Price:      decimal.NewFromInt(-1),
			CategoryID: uuid.NewString(),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be negative")
		productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()
		categoryRepo, productRepo, svc := newProductFixture()

		categoryID := uuid.New()
		categoryRepo.On("FindByID", mock.Anything, categoryID).Return(nil, nil)

		_, err := svc.Create(context.Background(), &request.ProductRequest{
			Name:       "Kaos Polos",
			Price:      decimal.NewFromInt(50000),
			CategoryID: categoryID.String(),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "category not found")
		productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetProducts(t *testing.T) {
	t.Parallel()

	t.Run("paginates with keyword and category filter", func(t *testing.T) {
		t.Parallel()
		_, productRepo, svc := newProductFixture()

		categoryID := uuid.New()
		products := []*entity.Product{
			{
				Base:       entity.Base{ID: uuid.New()},
				Name:       "Kaos Polos",
				Price:      decimal.NewFromInt(50000),
				CategoryID: categoryID,
			},
		}
		productRepo.On("FindAll", mock.Anything, "kaos", &categoryID, 10, 0).Return(products, nil)
		productRepo.On("CountAll", mock.Anything, "kaos", &categoryID).Return(int64(1), nil)

		resp, err := svc.GetAll(context.Background(), &request.PaginatedRequest{
			Page:    1,
			PerPage: 10,
			Keyword: "kaos",
		}, categoryID.String())

		require.NoError(t, err)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, int64(1), resp.Pagination.Total)
		assert.Equal(t, 1, resp.Pagination.TotalPages)
	})

	t.Run("rejects malformed category filter", func(t *testing.T) {
		t.Parallel()
		_, _, svc := newProductFixture()

		_, err := svc.GetAll(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10}, "not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid category ID")
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing product", func(t *testing.T) {
		t.Parallel()
		_, productRepo, svc := newProductFixture()

		product := testProduct(50000)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Delete", mock.Anything, product.ID).Return(nil)

		err := svc.Delete(context.Background(), product.ID.String())

		require.NoError(t, err)
		productRepo.AssertExpectations(t)
	})

	t.Run("returns not found for missing product", func(t *testing.T) {
		t.Parallel()
		_, productRepo, svc := newProductFixture()

		productID := uuid.New()
		productRepo.On("FindByID", mock.Anything, productID).Return(nil, nil)

		err := svc.Delete(context.Background(), productID.String())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product not found")
	})
}
