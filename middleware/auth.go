package middleware

import (
	"net/http"
	"strings"

	"github.com/pokecollect/pokedex-backend/models"
	"github.com/pokecollect/pokedex-backend/services"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key the decoded token claims live under.
const identityKey = "identity"

// RequireAuth extracts and verifies the bearer token from the Authorization
// header, then attaches the embedded identity for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "Access denied, missing or malformed token",
			})
			return
		}

		claims, err := services.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(identityKey, claims.User)
		c.Next()
	}
}

// RequireAdmin rejects callers whose token role is not admin. Must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentUser(c)
		if !ok || identity.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  http.StatusForbidden,
				"message": "Access denied: admin rights required",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity attached by RequireAuth.
func CurrentUser(c *gin.Context) (services.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return services.Identity{}, false
	}
	identity, ok := v.(services.Identity)
	return identity, ok
}
