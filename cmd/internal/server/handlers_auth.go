package server

import (
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dalmoeng/custos-go/cmd/internal/services/auth"
)

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// loginHandler handles POST /api/v1/auth/login.
// Authenticates by email and password and returns bearer access and
// refresh tokens in the JSON body.
func (s *Server) loginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	ipAddress := parseIPAddress(c.ClientIP())
	userAgent := c.Request.UserAgent()

	result, err := s.authService.Login(c.Request.Context(), req.Email, req.Password, ipAddress, userAgent)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		s.logger.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"user": gin.H{
			"id":    result.User.ID,
			"email": result.User.Email,
			"role":  result.User.Role,
		},
	})
}

// RefreshRequest carries the refresh token being rotated.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// refreshHandler handles POST /api/v1/auth/refresh.
// Rotates the refresh token and issues a new access token.
func (s *Server) refreshHandler(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	ipAddress := parseIPAddress(c.ClientIP())
	userAgent := c.Request.UserAgent()

	result, err := s.authService.Refresh(c.Request.Context(), req.RefreshToken, ipAddress, userAgent)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) || errors.Is(err, auth.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
			return
		}
		s.logger.WithError(err).Error("refresh failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}

// logoutHandler handles POST /api/v1/auth/logout.
// Revokes the refresh session. An unknown token still answers 200 so that
// logout stays idempotent.
func (s *Server) logoutHandler(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
		return
	}

	if err := s.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		s.logger.WithError(err).Error("logout failed")
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// meHandler handles GET /api/v1/auth/me.
func (s *Server) meHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := s.store.GetUserByID(c.Request.Context(), userID.(int64))
	if err != nil {
		s.logger.WithError(err).Error("failed to get user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// parseIPAddress strips an optional port from the client address. An address
// that does not parse at all comes back empty.
func parseIPAddress(ipStr string) string {
	host, _, err := net.SplitHostPort(ipStr)
	if err == nil {
		ipStr = host
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}
	return ip.String()
}
