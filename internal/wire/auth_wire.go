package wire

import (
	"shop-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, prefix string) {
	// ==================== PUBLIC ROUTES ====================
	// POST {prefix}/users/register - Register new account
	r.Post(prefix+"/users/register", authHandler.Register)

	// POST {prefix}/users/login - Login, returns JWT
	r.Post(prefix+"/users/login", authHandler.Login)
}
