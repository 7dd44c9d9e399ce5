package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenClaims is the identity bound to a validated bearer token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenValidator validates an opaque bearer token.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "email"
	ContextTokenKey  = "token"
)

// AuthMiddleware validates the Authorization header and stores the
// authenticated identity in the request context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		claims, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// UserID returns the authenticated user's id from the request context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
