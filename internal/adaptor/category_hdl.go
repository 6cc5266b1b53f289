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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// Create handles POST /categories (admin only)
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

// GetAll handles GET /categories
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// GetByID handles GET /categories/{id}
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	category, err := h.service.GetByID(r.Context(), categoryID)
	if err != nil {
		handleServiceError(h.log, w, err, "get category by ID")
		return
	}

	utils.ResponseSuccess(w, "Category retrieved successfully", category)
}

// Update handles PUT /categories/{id} (admin only)
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.Update(r.Context(), categoryID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated successfully", category)
}

// Delete handles DELETE /categories/{id} (admin only)
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), categoryID); err != nil {
		handleServiceError(h.log, w, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted successfully", nil)
}
