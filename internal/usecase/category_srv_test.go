package usecase

import (
	"context"
	"testing"

	"shop-api/internal/data/entity"
	"shop-api/internal/data/repository"
	"shop-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCategoryFixture() (*mockCategoryRepo, CategoryService) {
	categoryRepo := &mockCategoryRepo{}
	repo := &repository.Repository{
		Category: categoryRepo,
	}
	svc := NewCategoryService(repo, zap.NewNop())
	return categoryRepo, svc
}

func TestCategoryCRUD(t *testing.T) {
	t.Parallel()

	t.Run("create success", func(t *testing.T) {
		t.Parallel()
		categoryRepo, svc := newCategoryFixture()

		categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
			return c.Name == "Elektronik"
		})).Return(nil)

		resp, err := svc.Create(context.Background(), &request.CategoryRequest{Name: "Elektronik"})

		require.NoError(t, err)
		assert.Equal(t, "Elektronik", resp.Name)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("create rejects empty name", func(t *testing.T) {
		t.Parallel()
		_, svc := newCategoryFixture()

		_, err := svc.Create(context.Background(), &request.CategoryRequest{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("get by ID rejects malformed ID", func(t *testing.T) {
		t.Parallel()
		_, svc := newCategoryFixture()

		_, err := svc.GetByID(context.Background(), "abc")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid category ID")
	})

	t.Run("update missing category", func(t *testing.T) {
		t.Parallel()
		categoryRepo, svc := newCategoryFixture()

		categoryID := uuid.New()
		categoryRepo.On("FindByID", mock.Anything, categoryID).Return(nil, nil)

		_, err := svc.Update(context.Background(), categoryID.String(), &request.CategoryRequest{Name: "Baru"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "category not found")
	})

	t.Run("delete success", func(t *testing.T) {
		t.Parallel()
		categoryRepo, svc := newCategoryFixture()

		category := testCategory()
		categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		categoryRepo.On("Delete", mock.Anything, category.ID).Return(nil)

		err := svc.Delete(context.Background(), category.ID.String())

		require.NoError(t, err)
		categoryRepo.AssertExpectations(t)
	})
}
