package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dalmoeng/custos-go/cmd/internal/services/classify"
)

// nfSuggestionsHandler handles GET /api/v1/nf/:id/suggestions.
// Scores the invoice's unlinked lines against the contract's budget items.
func (s *Server) nfSuggestionsHandler(c *gin.Context) {
	id, ok := s.nfIDParam(c)
	if !ok {
		return
	}

	suggestions, err := s.classifyService.GetSuggestions(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  suggestions,
		"total": len(suggestions),
	})
}

type linkNfItemRequest struct {
	BudgetItemID string   `json:"budgetItemId" binding:"required"`
	Score        *float64 `json:"score"`
	Source       string   `json:"source"`
}

// linkNfItemHandler handles PUT /api/v1/nf/:id/items/:item_id/link.
func (s *Server) linkNfItemHandler(c *gin.Context) {
	nfID, itemID, ok := s.nfItemParams(c)
	if !ok {
		return
	}

	var req linkNfItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	item, err := s.classifyService.LinkItem(c.Request.Context(), nfID, itemID, classify.LinkParams{
		BudgetItemID: req.BudgetItemID,
		Score:        req.Score,
		Source:       req.Source,
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// unlinkNfItemHandler handles DELETE /api/v1/nf/:id/items/:item_id/link.
func (s *Server) unlinkNfItemHandler(c *gin.Context) {
	nfID, itemID, ok := s.nfItemParams(c)
	if !ok {
		return
	}

	item, err := s.classifyService.UnlinkItem(c.Request.Context(), nfID, itemID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (s *Server) nfItemParams(c *gin.Context) (int64, int64, bool) {
	nfID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de nota fiscal inválido")))
		return 0, 0, false
	}
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de item inválido")))
		return 0, 0, false
	}
	return nfID, itemID, true
}
