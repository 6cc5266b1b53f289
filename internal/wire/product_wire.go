package wire

import (
	"shop-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, prefix string) {
	r.Route(prefix+"/products", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", productHandler.GetAll)
		r.Get("/{id}", productHandler.GetByID)

		// ==================== ADMIN ROUTES ====================
		r.Post("/", productHandler.Create)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})
}
