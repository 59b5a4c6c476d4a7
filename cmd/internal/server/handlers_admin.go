package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

// listUsersHandler handles GET /api/v1/admin/users (admin only).
func (s *Server) listUsersHandler(c *gin.Context) {
	var queryParams struct {
		Page  int `form:"page,default=1"`
		Limit int `form:"limit,default=50"`
	}
	if err := c.ShouldBindQuery(&queryParams); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if queryParams.Page < 1 || queryParams.Limit < 1 || queryParams.Limit > 100 {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("parâmetros de paginação inválidos")))
		return
	}

	users, err := s.store.ListUsers(c.Request.Context(), db.ListUsersParams{
		Limit:  int32(queryParams.Limit),
		Offset: int32(queryParams.Page-1) * int32(queryParams.Limit),
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, newUserResponse(user))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

var allowedRoles = map[string]bool{
	"admin":    true,
	"engineer": true,
	"viewer":   true,
}

type updateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// updateUserRoleHandler handles PATCH /api/v1/admin/users/:id/role (admin only).
func (s *Server) updateUserRoleHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de usuário inválido")))
		return
	}

	var req updateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if !allowedRoles[req.Role] {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("papel inválido: %s", req.Role)))
		return
	}

	// Changing a role invalidates the user's refresh sessions so the old
	// role cannot outlive its access token for long.
	user, err := s.store.UpdateUserRole(c.Request.Context(), db.UpdateUserRoleParams{
		ID:   id,
		Role: req.Role,
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	if err := s.store.RevokeAllUserSessions(c.Request.Context(), id); err != nil {
		s.logger.WithError(err).Error("failed to revoke sessions after role change")
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
