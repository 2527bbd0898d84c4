package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

type ctxKey int

const claimsCtxKey ctxKey = iota

// ClaimsFromContext returns the session claims the auth middleware stored.
func ClaimsFromContext(ctx context.Context) *entity.Claims {
	claims, _ := ctx.Value(claimsCtxKey).(*entity.Claims)
	return claims
}

// auth gates every route except login: a missing header is 401, and so is
// any malformed, expired or denylisted token.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.errorJSON(w, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := s.Controllers.AuthController.CheckUserToken(r.Context(), authHeader)
		if err != nil {
			s.deps.Logger.Warn("Error checking token", slog.String("error", err.Error()))
			s.errorJSON(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != entity.RoleAdmin {
			s.errorJSON(w, http.StatusForbidden, "Insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
