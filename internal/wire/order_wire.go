package wire

import (
	"shop-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler, prefix string) {
	r.Route(prefix+"/orders", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", orderHandler.GetAll)
		r.Get("/get-orders-by-keyword", orderHandler.GetAll)
		r.Get("/user/{user_id}", orderHandler.GetByUserID)
		r.Get("/{id}", orderHandler.GetByID)

		// ==================== USER ROUTES ====================
		r.Post("/", orderHandler.Create)

		// ==================== ADMIN ROUTES ====================
		r.Put("/{id}", orderHandler.Update)
		r.Delete("/{id}", orderHandler.Delete)
	})
}
