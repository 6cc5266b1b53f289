package wire

import (
	"shop-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrderDetail(r chi.Router, detailHandler *adaptor.OrderDetailHandler, prefix string) {
	r.Route(prefix+"/order_details", func(r chi.Router) {
		// ==================== USER/ADMIN ROUTES ====================
		r.Get("/order/{order_id}", detailHandler.GetByOrderID)
		r.Get("/{id}", detailHandler.GetByID)
		r.Post("/", detailHandler.Create)

		// ==================== ADMIN ROUTES ====================
		r.Put("/{id}", detailHandler.Update)
		r.Delete("/{id}", detailHandler.Delete)
	})
}
