package middlewares

import (
	"net/http"
	"strings"

	"reelhub/services"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware extracts the bearer token, verifies it with the identity
// provider and stores the resulting principal in the request context.
func AuthMiddleware(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}

		principal, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the verified principal set by
// AuthMiddleware, or nil when the request was not authenticated.
func PrincipalFromContext(c *gin.Context) *services.Principal {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, ok := value.(*services.Principal)
	if !ok {
		return nil
	}
	return principal
}
