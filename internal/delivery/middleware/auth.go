package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/SheikhZaeem/Task-Manager/internal/domain"
	"github.com/SheikhZaeem/Task-Manager/internal/infrastructure"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// JWTAuth rejects any request without a valid bearer token before the handler
// runs. On success the verified claims are placed in the request context.
func JWTAuth(tokens *infrastructure.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeUnauthorized(w, "Authorization header format must be Bearer {token}")
				return
			}

			claims, err := tokens.VerifyToken(parts[1])
			if err != nil {
				writeUnauthorized(w, "Not authorized or invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the verified claims stored by JWTAuth.
func ClaimsFrom(ctx context.Context) (*infrastructure.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*infrastructure.Claims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Message: message})
}
