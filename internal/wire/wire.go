// internal/wire/wire.go
package wire

import (
	"net/http"

	"shop-api/internal/adaptor"
	"shop-api/internal/data/repository"
	"shop-api/internal/usecase"
	"shop-api/pkg/middleware"
	"shop-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router. Otorisasi tidak per-route:
// satu Gate global dengan policy table, dievaluasi sekali per request.
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	prefix := config.App.APIPrefix
	policy := middleware.DefaultPolicy(prefix)

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Gate(policy, config.JWT, repo.User, logger))

	// Apply routes
	wireAuth(r, handler.Auth, prefix)
	wireUser(r, handler.User, prefix)
	wireCategory(r, handler.Category, prefix)
	wireProduct(r, handler.Product, prefix)
	wireOrder(r, handler.Order, prefix)
	wireOrderDetail(r, handler.OrderDetail, prefix)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
