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

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// Create handles POST /products (admin only)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// GetAll handles GET /products dengan pagination, keyword,
// dan filter category_id opsional
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)
	categoryID := r.URL.Query().Get("category_id")

	products, err := h.service.GetAll(r.Context(), req, categoryID)
	if err != nil {
		handleServiceError(h.log, w, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// GetByID handles GET /products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		handleServiceError(h.log, w, err, "get product by ID")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// Update handles PUT /products/{id} (admin only)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.Update(r.Context(), productID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", product)
}

// Delete handles DELETE /products/{id} (admin only)
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), productID); err != nil {
		handleServiceError(h.log, w, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}
