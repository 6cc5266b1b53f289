package wire

import (
	"shop-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, prefix string) {
	// ==================== PUBLIC ROUTES ====================
	// GET {prefix}/roles - List available roles (for registration form)
	r.Get(prefix+"/roles", userHandler.GetRoles)

	// ==================== AUTHENTICATED ROUTES ====================
	// POST {prefix}/users/details - Own profile, identity dari token
	r.Post(prefix+"/users/details", userHandler.GetDetails)

	// PUT {prefix}/users/details/{id} - Update own profile
	r.Put(prefix+"/users/details/{id}", userHandler.UpdateDetails)
}
