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

type OrderService interface {
	Create(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetByID(ctx context.Context, id string) (*response.OrderResponse, error)
	GetByUserID(ctx context.Context, userID string) ([]response.OrderResponse, error)
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	Update(ctx context.Context, id string, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	Delete(ctx context.Context, id string) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Create(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validasi request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. User reference harus valid
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to check user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// 3. Shipping date default hari ini, tidak boleh lampau
	shippingDate, err := resolveShippingDate(req.ShippingDate)
	if err != nil {
		return nil, err
	}

	// 4. Build order, status selalu mulai dari pending
	now := time.Now()
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		Note:            req.Note,
		OrderDate:       now,
		Status:          entity.OrderStatusPending,
		ShippingMethod:  req.ShippingMethod,
		ShippingAddress: req.ShippingAddress,
		ShippingDate:    shippingDate,
		PaymentMethod:   req.PaymentMethod,
		Active:          true,
	}

	// 5. Line items divalidasi terhadap product record saat ini,
	//    harga diambil dari product, bukan dari request
	details := make([]*entity.OrderDetail, 0, len(req.CartItems))
	lineTotal := decimal.Zero
	for _, item := range req.CartItems {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product ID format %s", item.ProductID)
		}

		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			s.log.Error("Failed to check product", zap.Error(err), zap.String("product_id", item.ProductID))
			return nil, fmt.Errorf("failed to check product")
		}
		if product == nil {
			return nil, fmt.Errorf("product %s not found", item.ProductID)
		}

		total := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		details = append(details, &entity.OrderDetail{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			OrderID:          order.ID,
			ProductID:        productID,
			Price:            product.Price,
			NumberOfProducts: item.Quantity,
			TotalMoney:       total,
			Color:            item.Color,
		})
		lineTotal = lineTotal.Add(total)
	}

	// Total dari request dipakai kalau diisi, kalau tidak dihitung dari lines
	order.TotalMoney = req.TotalMoney
	if order.TotalMoney.IsZero() {
		order.TotalMoney = lineTotal
	}

	// 6. Order + details dalam satu transaksi
	if err := s.repo.Order.CreateWithDetails(ctx, order, details); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", req.UserID),
		)
		return nil, fmt.Errorf("failed to create order")
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", req.UserID),
		zap.Int("items", len(details)))

	resp := response.OrderToResponse(order, details)
	return &resp, nil
}

// GetByID mengembalikan order termasuk yang sudah soft-deleted
func (s *orderService) GetByID(ctx context.Context, id string) (*response.OrderResponse, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format")
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", id))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	details, err := s.repo.OrderDetail.FindByOrderID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to load order details", zap.Error(err), zap.String("order_id", id))
		return nil, fmt.Errorf("failed to load order details")
	}

	resp := response.OrderToResponse(order, details)
	return &resp, nil
}

func (s *orderService) GetByUserID(ctx context.Context, userID string) ([]response.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format")
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get orders by user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get orders")
	}

	responses := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, response.OrderToResponse(order, nil))
	}

	return responses, nil
}

func (s *orderService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindAll(ctx, req.Keyword, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("failed to get orders")
	}

	total, err := s.repo.Order.CountAll(ctx, req.Keyword)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("failed to count orders")
	}

	responses := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, response.OrderToResponse(order, nil))
	}

	return response.NewPaginatedResponse(responses, req.Page, req.Limit(), total), nil
}

func (s *orderService) Update(ctx context.Context, id string, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format")
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", id))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	// Re-validate user reference
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to check user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Status hanya boleh maju sesuai urutan lifecycle
	newStatus := entity.OrderStatus(req.Status)
	if !newStatus.Valid() {
		return nil, fmt.Errorf("invalid order status %s", req.Status)
	}
	if !order.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("invalid status transition from %s to %s", order.Status, newStatus)
	}

	if req.ShippingDate != "" {
		shippingDate, err := resolveShippingDate(req.ShippingDate)
		if err != nil {
			return nil, err
		}
		order.ShippingDate = shippingDate
	}

	order.UserID = userID
	order.FullName = req.FullName
	order.Email = req.Email
	order.PhoneNumber = req.PhoneNumber
	order.Address = req.Address
	order.Note = req.Note
	order.Status = newStatus
	order.TotalMoney = req.TotalMoney
	order.ShippingMethod = req.ShippingMethod
	order.ShippingAddress = req.ShippingAddress
	order.TrackingNumber = req.TrackingNumber
	order.PaymentMethod = req.PaymentMethod
	order.UpdatedAt = time.Now()

	if err := s.repo.Order.Update(ctx, order); err != nil {
		s.log.Error("Failed to update order", zap.Error(err), zap.String("order_id", id))
		return nil, fmt.Errorf("failed to update order")
	}

	details, err := s.repo.OrderDetail.FindByOrderID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to load order details", zap.Error(err), zap.String("order_id", id))
		return nil, fmt.Errorf("failed to load order details")
	}

	resp := response.OrderToResponse(order, details)
	return &resp, nil
}

// Delete hanya soft delete, order tidak pernah dihapus fisik
func (s *orderService) Delete(ctx context.Context, id string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid order ID format")
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", id))
		return fmt.Errorf("failed to find order")
	}
	if order == nil {
		return fmt.Errorf("order not found")
	}

	if err := s.repo.Order.SoftDelete(ctx, orderID); err != nil {
		s.log.Error("Failed to delete order", zap.Error(err), zap.String("order_id", id))
		return fmt.Errorf("failed to delete order")
	}

	return nil
}

// resolveShippingDate parse YYYY-MM-DD, kosong = hari ini.
// Tanggal sebelum hari ini ditolak.
func resolveShippingDate(value string) (time.Time, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if value == "" {
		return today, nil
	}

	shippingDate, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid shipping date format")
	}

	if shippingDate.Before(today) {
		return time.Time{}, fmt.Errorf("invalid shipping date: must be at least today")
	}

	return shippingDate, nil
}
