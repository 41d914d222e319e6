package middlewares

import (
	"net/http"
	"strings"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key the auth middlewares set for handlers.
const UserIDKey = "userID"

// AuthMiddleware guards owner-scoped routes. It verifies the bearer token and
// injects the asserted user id into the request context.
func AuthMiddleware(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := users.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware authenticates when a bearer token is supplied but
// lets anonymous requests through. A present-but-invalid token is still
// rejected so callers cannot silently fall back to the shared view.
func OptionalAuthMiddleware(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := users.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
