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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetDetails handles POST /users/details.
// Identitas diambil dari token, bukan dari body.
func (h *UserHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.GetDetails(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get user details")
		return
	}

	utils.ResponseSuccess(w, "User details retrieved successfully", user)
}

// UpdateDetails handles PUT /users/details/{id}.
// User hanya boleh update record miliknya sendiri.
func (h *UserHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.UpdateDetails(r.Context(), requesterID, targetID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update user details")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// GetRoles handles GET /roles
func (h *UserHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.GetRoles(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get roles")
		return
	}

	utils.ResponseSuccess(w, "Roles retrieved successfully", roles)
}
