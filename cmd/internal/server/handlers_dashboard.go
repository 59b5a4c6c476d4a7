package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// dashboardSummaryHandler handles GET /api/v1/dashboard.
// One payload for the home screen: contract KPIs, contracts needing
// attention and invoice volume figures.
func (s *Server) dashboardSummaryHandler(c *gin.Context) {
	summary, err := s.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// dashboardKPIsHandler handles GET /api/v1/dashboard/kpis.
func (s *Server) dashboardKPIsHandler(c *gin.Context) {
	kpis, err := s.dashboardService.GetKPIs(c.Request.Context())
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, kpis)
}
