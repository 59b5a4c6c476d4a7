package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "ok",
	})
}

func (s *Server) getStatsHandler(c *gin.Context) {
	count, err := s.store.GetContractsCount(c.Request.Context())
	if err != nil {
		s.logger.Errorf("erro ao obter o número de contratos: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contracts_count": count,
		"message":         "Estatísticas obtidas com sucesso",
	})
}
