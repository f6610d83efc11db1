package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/styleai-app/styleai-server/utils"
)

type contextKey string

const userIDKey contextKey = "user_id"

// RequireAuth validates the bearer token and stores the caller's opaque user
// id in the request context. Authentication itself lives in the external auth
// collaborator; this layer only verifies the token it issued.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
			return
		}

		token, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || !token.Valid {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid token claims")
			return
		}
		userID, _ := claims["user_id"].(string)
		if userID == "" {
			utils.RespondError(w, http.StatusUnauthorized, "Token missing user id")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// GetUserIDFromContext returns the authenticated caller's opaque user id.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user id not found in context")
	}
	return userID, nil
}
