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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderDetailService interface {
	Create(ctx context.Context, req *request.OrderDetailRequest) (*response.OrderDetailResponse, error)
	GetByID(ctx context.Context, id string) (*response.OrderDetailResponse, error)
	GetByOrderID(ctx context.Context, orderID string) ([]response.OrderDetailResponse, error)
	Update(ctx context.Context, id string, req *request.OrderDetailRequest) (*response.OrderDetailResponse, error)
	Delete(ctx context.Context, id string) error
}

type orderDetailService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderDetailService(repo *repository.Repository, log *zap.Logger) OrderDetailService {
	return &orderDetailService{
		repo: repo,
		log:  log.With(zap.String("service", "order_detail")),
	}
}

// resolveDetailRefs memastikan order dan product reference valid
func (s *orderDetailService) resolveDetailRefs(ctx context.Context, req *request.OrderDetailRequest) (uuid.UUID, *entity.Product, error) {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid order ID format")
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to check order", zap.Error(err), zap.String("order_id", req.OrderID))
		return uuid.Nil, nil, fmt.Errorf("failed to check order")
	}
	if order == nil {
		return uuid.Nil, nil, fmt.Errorf("order not found")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid product ID format")
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to check product", zap.Error(err), zap.String("product_id", req.ProductID))
		return uuid.Nil, nil, fmt.Errorf("failed to check product")
	}
	if product == nil {
		return uuid.Nil, nil, fmt.Errorf("product not found")
	}

	return orderID, product, nil
}

func (s *orderDetailService) Create(ctx context.Context, req *request.OrderDetailRequest) (*response.OrderDetailResponse, error) {
	// 1. Validasi request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order detail validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Order dan product harus ada
	orderID, product, err := s.resolveDetailRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Harga default dari product, total default harga x qty
	price := req.Price
	if price.IsZero() {
		price = product.Price
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("invalid price: must not be negative")
	}

	total := req.TotalMoney
	if total.IsZero() {
		total = price.Mul(decimal.NewFromInt(int64(req.NumberOfProducts)))
	}

	now := time.Now()
	detail := &entity.OrderDetail{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:          orderID,
		ProductID:        product.ID,
		Price:            price,
		NumberOfProducts: req.NumberOfProducts,
		TotalMoney:       total,
		Color:            req.Color,
	}

	if err := s.repo.OrderDetail.Create(ctx, detail); err != nil {
		s.log.Error("Failed to create order detail",
			zap.Error(err),
			zap.String("order_id", req.OrderID),
		)
		return nil, fmt.Errorf("failed to create order detail")
	}

	s.log.Info("Order detail created",
		zap.String("order_detail_id", detail.ID.String()),
		zap.String("order_id", req.OrderID))

	resp := response.OrderDetailToResponse(detail)
	return &resp, nil
}

func (s *orderDetailService) GetByID(ctx context.Context, id string) (*response.OrderDetailResponse, error) {
	detailID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order detail ID format")
	}

	detail, err := s.repo.OrderDetail.FindByID(ctx, detailID)
	if err != nil {
		s.log.Error("Failed to find order detail", zap.Error(err), zap.String("order_detail_id", id))
		return nil, fmt.Errorf("failed to find order detail")
	}
	if detail == nil {
		return nil, fmt.Errorf("order detail not found")
	}

	resp := response.OrderDetailToResponse(detail)
	return &resp, nil
}

func (s *orderDetailService) GetByOrderID(ctx context.Context, orderID string) ([]response.OrderDetailResponse, error) {
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format")
	}

	order, err := s.repo.Order.FindByID(ctx, orderUUID)
	if err != nil {
		s.log.Error("Failed to check order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to check order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	details, err := s.repo.OrderDetail.FindByOrderID(ctx, orderUUID)
	if err != nil {
		s.log.Error("Failed to get order details", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to get order details")
	}

	responses := make([]response.OrderDetailResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, response.OrderDetailToResponse(detail))
	}

	return responses, nil
}

func (s *orderDetailService) Update(ctx context.Context, id string, req *request.OrderDetailRequest) (*response.OrderDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order detail validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	detailID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order detail ID format")
	}

	detail, err := s.repo.OrderDetail.FindByID(ctx, detailID)
	if err != nil {
		s.log.Error("Failed to find order detail", zap.Error(err), zap.String("order_detail_id", id))
		return nil, fmt.Errorf("failed to find order detail")
	}
	if detail == nil {
		return nil, fmt.Errorf("order detail not found")
	}

	// Reference di-update juga harus valid
	orderID, product, err := s.resolveDetailRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	price := req.Price
	if price.IsZero() {
		price = product.Price
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("invalid price: must not be negative")
	}

	total := req.TotalMoney
	if total.IsZero() {
		total = price.Mul(decimal.NewFromInt(int64(req.NumberOfProducts)))
	}

	detail.OrderID = orderID
	detail.ProductID = product.ID
	detail.Price = price
	detail.NumberOfProducts = req.NumberOfProducts
	detail.TotalMoney = total
	detail.Color = req.Color
	detail.UpdatedAt = time.Now()

	if err := s.repo.OrderDetail.Update(ctx, detail); err != nil {
		s.log.Error("Failed to update order detail", zap.Error(err), zap.String("order_detail_id", id))
		return nil, fmt.Errorf("failed to update order detail")
	}

	resp := response.OrderDetailToResponse(detail)
	return &resp, nil
}

func (s *orderDetailService) Delete(ctx context.Context, id string) error {
	detailID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid order detail ID format")
	}

	detail, err := s.repo.OrderDetail.FindByID(ctx, detailID)
	if err != nil {
		s.log.Error("Failed to find order detail", zap.Error(err), zap.String("order_detail_id", id))
		return fmt.Errorf("failed to find order detail")
	}
	if detail == nil {
		return fmt.Errorf("order detail not found")
	}

	if err := s.repo.OrderDetail.Delete(ctx, detailID); err != nil {
		s.log.Error("Failed to delete order detail", zap.Error(err), zap.String("order_detail_id", id))
		return fmt.Errorf("failed to delete order detail")
	}

	return nil
}
