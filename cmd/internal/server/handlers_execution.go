package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// getExecutionHandler handles GET /api/v1/contracts/:id/execution.
// The execution view is derived from the budget and the linked invoice
// lines on every call, nothing is cached.
func (s *Server) getExecutionHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	execution, err := s.executionService.GetExecution(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, execution)
}

// recalculateExecutionHandler handles POST /api/v1/contracts/:id/execution/recalculate.
// Same derivation as GET; the POST form exists so the frontend can force a
// refresh after linking invoices. Idempotent.
func (s *Server) recalculateExecutionHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	execution, err := s.executionService.GetExecution(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, execution)
}
