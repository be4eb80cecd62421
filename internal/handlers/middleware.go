package handlers

import (
	"net/http"
	"strings"

	"wholesale_manager/internal/redis"
	"wholesale_manager/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// AuthRequired resolves the bearer token into a session and stores the
// identity in the request context. Every route below the login screen runs
// behind this middleware.
func AuthRequired(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		session, err := authService.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// ManagerOnly gates a route group to the Manager role.
func ManagerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.RequireManager(CurrentSession(c)); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "manager role required"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the identity resolved by AuthRequired.
func CurrentSession(c *gin.Context) *redis.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if session, ok := v.(*redis.Session); ok {
			return session
		}
	}
	return nil
}
