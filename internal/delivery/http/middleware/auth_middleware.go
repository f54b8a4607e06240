package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"appointment-booking-service/pkg/jwt"
	"appointment-booking-service/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UsernameKey contextKey = "username"
	TokenIDKey  contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Authenticate validates the session token on every request: the JWT
// must verify and the session record must still exist in redis.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check the session still exists in redis (not revoked)
		sessionKey := fmt.Sprintf("session:%s:%s", claims.Username, claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), sessionKey).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Session has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsernameFromContext extracts the admin username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetTokenIDFromContext extracts the session token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
