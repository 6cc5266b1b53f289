package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-api/internal/data/entity"
	"shop-api/internal/data/repository"
	"shop-api/internal/dto/request"
	"shop-api/internal/dto/response"
	"shop-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService interface {
	Create(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	GetByID(ctx context.Context, id string) (*response.CategoryResponse, error)
	GetAll(ctx context.Context) ([]response.CategoryResponse, error)
	Update(ctx context.Context, id string, req *request.CategoryRequest) (*response.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) Create(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category")
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*response.CategoryResponse, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format")
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", id))
		return nil, fmt.Errorf("failed to find category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories")
	}

	responses := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, response.CategoryToResponse(category))
	}

	return responses, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format")
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", id))
		return nil, fmt.Errorf("failed to find category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	category.Name = req.Name
	category.UpdatedAt = time.Now()

	if err := s.repo.Category.Update(ctx, category); err != nil {
		s.log.Error("Failed to update category", zap.Error(err), zap.String("category_id", id))
		return nil, fmt.Errorf("failed to update category")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid category ID format")
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", id))
		return fmt.Errorf("failed to find category")
	}
	if category == nil {
		return fmt.Errorf("category not found")
	}

	if err := s.repo.Category.Delete(ctx, categoryID); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("category_id", id))
		return fmt.Errorf("failed to delete category")
	}

	s.log.Info("Category deleted", zap.String("category_id", id))
	return nil
}
