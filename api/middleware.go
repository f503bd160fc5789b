package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const playerKey = "player"

// AuthMiddleware validates the bearer token and stores the player identity
// on the request context.
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(playerKey, claims.Player)
		c.Next()
	}
}

// callerFrom returns the authenticated player identity
func callerFrom(c *gin.Context) string {
	return c.GetString(playerKey)
}
