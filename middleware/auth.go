package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"bikerz-heaven/store"
	"bikerz-heaven/utils"
)

// Key type for context values.
type contextKey string

const userContextKey = contextKey("user")

// AuthMiddleware verifies the bearer token and attaches its claims to the
// request context. A missing header is 401; a malformed, invalid or
// expired token is 403. Verification failure terminates the request.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized Access")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(w, http.StatusForbidden, "Forbidden Access")
			return
		}

		claims, err := utils.ParseJWT(parts[1])
		if err != nil {
			utils.Error(w, http.StatusForbidden, "Forbidden Access")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin ensures the authenticated caller carries the admin role.
// Tokens only prove the email, so the role is resolved from the user store.
func RequireAdmin(users store.UserStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				utils.Error(w, http.StatusUnauthorized, "Unauthorized Access")
				return
			}

			user, err := users.GetByEmail(r.Context(), claims.Email)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					utils.Error(w, http.StatusForbidden, "Forbidden Access")
					return
				}
				utils.Error(w, http.StatusInternalServerError, "Failed to verify role")
				return
			}
			if !user.IsAdmin() {
				utils.Error(w, http.StatusForbidden, "Forbidden Access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext returns the verified claims attached by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(userContextKey).(*utils.Claims)
	return claims, ok
}

// ContextWithClaims attaches claims to a context. Used by tests to stand in
// for AuthMiddleware.
func ContextWithClaims(ctx context.Context, claims *utils.Claims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}
