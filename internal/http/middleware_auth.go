package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"bookstore/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// RequireRoles guards a handler behind the authorization gate. With no
// roles the route stays open to anonymous callers; a presented token is
// still validated and its claims made available downstream.
func RequireRoles(tokens *auth.TokenService, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var claims *auth.Claims

			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				raw := strings.TrimPrefix(authHeader, "Bearer ")
				parsed, err := tokens.Validate(raw)
				if err == nil {
					claims = parsed
				}
			}

			if err := auth.Authorize(claims, roles...); err != nil {
				if errors.Is(err, auth.ErrForbidden) {
					JSONError(w, http.StatusForbidden, "FORBIDDEN", "Insufficient role", nil)
					return
				}
				JSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required", nil)
				return
			}

			if claims != nil {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ClaimsFrom(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(claimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
