package wire

import (
	"shop-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler, prefix string) {
	r.Route(prefix+"/categories", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", categoryHandler.GetAll)
		r.Get("/{id}", categoryHandler.GetByID)

		// ==================== ADMIN ROUTES ====================
		r.Post("/", categoryHandler.Create)
		r.Put("/{id}", categoryHandler.Update)
		r.Delete("/{id}", categoryHandler.Delete)
	})
}
