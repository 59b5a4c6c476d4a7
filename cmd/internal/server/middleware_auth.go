package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dalmoeng/custos-go/cmd/internal/config"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/services/auth"
)

const authorizationHeader = "Authorization"

// AuthMiddleware validates the JWT access token from the Authorization
// header ("Bearer <token>") and puts user_id and role into the gin.Context.
func AuthMiddleware(cfg *config.Config, store db.Store) gin.HandlerFunc {
	authService := auth.NewService(store, cfg)

	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "access token not found",
			})
			c.Abort()
			return
		}

		claims, err := authService.ValidateAccessToken(header[len("Bearer "):])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired access token",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole checks that the authenticated user carries the required role.
// Must run after AuthMiddleware.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "invalid role type in context",
			})
			c.Abort()
			return
		}

		if role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
