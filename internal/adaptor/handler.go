package adaptor

import (
	"net/http"
	"strings"

	"shop-api/internal/dto/request"
	"shop-api/internal/usecase"
	"shop-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Category    *CategoryHandler
	Product     *ProductHandler
	Order       *OrderHandler
	OrderDetail *OrderDetailHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Category:    NewCategoryHandler(service.Category, log),
		Product:     NewProductHandler(service.Product, log),
		Order:       NewOrderHandler(service.Order, log),
		OrderDetail: NewOrderDetailHandler(service.OrderDetail, log),
	}
}

// handleServiceError mapping error message service ke HTTP status.
// Service layer pakai prefix message yang konsisten, jadi cukup
// string match di sini.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "must be"),
		strings.Contains(errMsg, "locked"):
		log.Warn(operation+" failed - bad request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "permission"),
		strings.Contains(errMsg, "forbidden"):
		log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"),
		strings.Contains(errMsg, "authentication"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination ambil page/per_page/keyword dari query string
func parsePagination(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
		Keyword: query.Get("keyword"),
	}
}
