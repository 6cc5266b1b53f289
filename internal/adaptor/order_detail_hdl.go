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

type OrderDetailHandler struct {
	service usecase.OrderDetailService
	log     *zap.Logger
}

func NewOrderDetailHandler(service usecase.OrderDetailService, log *zap.Logger) *OrderDetailHandler {
	return &OrderDetailHandler{
		service: service,
		log:     log.With(zap.String("handler", "order_detail")),
	}
}

// Create handles POST /order_details (user only)
func (h *OrderDetailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.OrderDetailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	detail, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create order detail")
		return
	}

	utils.ResponseCreated(w, "Order detail created successfully", detail)
}

// GetByID handles GET /order_details/{id}
func (h *OrderDetailHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		utils.ResponseBadRequest(w, "Order detail ID is required", nil)
		return
	}

	detail, err := h.service.GetByID(r.Context(), detailID)
	if err != nil {
		handleServiceError(h.log, w, err, "get order detail by ID")
		return
	}

	utils.ResponseSuccess(w, "Order detail retrieved successfully", detail)
}

// GetByOrderID handles GET /order_details/order/{order_id}
func (h *OrderDetailHandler) GetByOrderID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	details, err := h.service.GetByOrderID(r.Context(), orderID)
	if err != nil {
		handleServiceError(h.log, w, err, "get order details by order")
		return
	}

	utils.ResponseSuccess(w, "Order details retrieved successfully", details)
}

// Update handles PUT /order_details/{id} (admin only)
func (h *OrderDetailHandler) Update(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		utils.ResponseBadRequest(w, "Order detail ID is required", nil)
		return
	}

	var req request.OrderDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	detail, err := h.service.Update(r.Context(), detailID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update order detail")
		return
	}

	utils.ResponseSuccess(w, "Order detail updated successfully", detail)
}

// Delete handles DELETE /order_details/{id} (admin only)
func (h *OrderDetailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		utils.ResponseBadRequest(w, "Order detail ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), detailID); err != nil {
		handleServiceError(h.log, w, err, "delete order detail")
		return
	}

	utils.ResponseSuccess(w, "Order detail deleted successfully", nil)
}
