package adaptor

import (
	"encoding/json"
	"net/http"

	"shop-api/internal/dto/request"
	"shop-api/internal/usecase"
	"shop-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Create handles POST /orders (user only)
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", order)
}

// GetAll handles GET /orders/get-orders-by-keyword
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)

	orders, err := h.service.GetAll(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// GetByID handles GET /orders/{id}
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		handleServiceError(h.log, w, err, "get order by ID")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", order)
}

// GetByUserID handles GET /orders/user/{user_id}
func (h *OrderHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	orders, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get orders by user")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// Update handles PUT /orders/{id} (admin only)
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	var req request.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.Update(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update order")
		return
	}

	utils.ResponseSuccess(w, "Order updated successfully", order)
}

// Delete handles DELETE /orders/{id} (admin only, soft delete)
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), orderID); err != nil {
		handleServiceError(h.log, w, err, "delete order")
		return
	}

	utils.ResponseSuccess(w, "Order deleted successfully", nil)
}
