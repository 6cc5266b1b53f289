package middleware

import (
	"net/http"
	"strings"

	"shop-api/internal/data/repository"
	"shop-api/pkg/utils"

	"go.uber.org/zap"
)

// Gate adalah request gate tunggal: public bypass, validasi bearer JWT,
// load user dari token subject, lalu cek role lewat policy table.
// Satu evaluasi per request, tidak ada retry.
func Gate(
	policy *Policy,
	jwtCfg utils.JWTConfig,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public routes lewat tanpa token
			if policy.IsPublic(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(jwtCfg.Secret, parts[1])
			if err != nil {
				logger.Warn("Token validation failed",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Subject dicocokkan dengan user record yang fresh
			user, err := userRepo.FindByPhoneNumber(r.Context(), claims.Subject)
			if err != nil {
				logger.Error("Failed to load user for token subject",
					zap.String("subject", claims.Subject),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.PhoneNumber != claims.Subject {
				logger.Warn("Token subject has no matching user",
					zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if !user.IsActive {
				logger.Warn("Inactive user presented valid token",
					zap.String("user_id", user.ID.String()))
				utils.ResponseUnauthorized(w, "Account is deactivated")
				return
			}

			// Cek role dari policy table, first-match-wins
			if required := policy.RequiredRoles(r.Method, r.URL.Path); len(required) > 0 {
				allowed := false
				for _, role := range required {
					if user.RoleName == role {
						allowed = true
						break
					}
				}
				if !allowed {
					logger.Warn("Role not permitted for route",
						zap.String("user_id", user.ID.String()),
						zap.String("role", user.RoleName),
						zap.String("path", r.URL.Path))
					utils.ResponseForbidden(w, "You do not have permission to access this resource")
					return
				}
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.PhoneNumber, user.RoleName)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
