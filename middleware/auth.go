// Package middleware holds the HTTP middleware of the request pipeline.
// Each one is a func(next http.Handler) http.Handler that either calls next
// or answers the request itself.
package middleware

import (
	"net/http"
	"strings"

	"github.com/akinalp/huddle/handlers"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/services"
)

// AuthMiddleware requires a valid access token.
type AuthMiddleware struct {
	authService services.AuthService
}

func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require rejects requests without a valid "Authorization: Bearer <token>"
// header with 401 and puts the token's user id into the context.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid authorization format, use: Bearer <token>")
			return
		}

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		ctx := handlers.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
