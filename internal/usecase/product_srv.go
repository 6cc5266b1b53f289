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

type ProductService interface {
	Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	GetByID(ctx context.Context, id string) (*response.ProductResponse, error)
	GetAll(ctx context.Context, req *request.PaginatedRequest, categoryID string) (*response.PaginatedResponse[response.ProductResponse], error)
	Update(ctx context.Context, id string, req *request.ProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("invalid price: must not be negative")
	}

	// Category reference harus valid
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format")
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to check category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		CategoryID:  categoryID,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*response.ProductResponse, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format")
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("failed to find product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetAll(ctx context.Context, req *request.PaginatedRequest, categoryID string) (*response.PaginatedResponse[response.ProductResponse], error) {
	var categoryFilter *uuid.UUID
	if categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID format")
		}
		categoryFilter = &id
	}

	products, err := s.repo.Product.FindAll(ctx, req.Keyword, categoryFilter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("failed to get products")
	}

	total, err := s.repo.Product.CountAll(ctx, req.Keyword, categoryFilter)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("failed to count products")
	}

	responses := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, response.ProductToResponse(product))
	}

	return response.NewPaginatedResponse(responses, req.Page, req.Limit(), total), nil
}

func (s *productService) Update(ctx context.Context, id string, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("invalid price: must not be negative")
	}

	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format")
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("failed to find product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format")
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to check category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Thumbnail = req.Thumbnail
	product.Description = req.Description
	product.CategoryID = categoryID
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("failed to update product")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid product ID format")
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", id))
		return fmt.Errorf("failed to find product")
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	if err := s.repo.Product.Delete(ctx, productID); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", id))
		return fmt.Errorf("failed to delete product")
	}

	s.log.Info("Product deleted", zap.String("product_id", id))
	return nil
}
