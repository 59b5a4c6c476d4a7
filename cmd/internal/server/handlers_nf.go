package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dalmoeng/custos-go/cmd/internal/services/nf"
	"github.com/dalmoeng/custos-go/cmd/internal/util"
)

type nfItemRequest struct {
	Description string   `json:"description" binding:"required"`
	Quantity    float64  `json:"quantity"`
	UnitValue   float64  `json:"unitValue"`
	TotalValue  float64  `json:"totalValue"`
	Ncm         *string  `json:"ncm"`
	Unit        *string  `json:"unit"`
	Weight      *float64 `json:"weight"`
}

type createNotaFiscalRequest struct {
	Number     string          `json:"number" binding:"required"`
	Series     string          `json:"series"`
	Supplier   string          `json:"supplier" binding:"required"`
	ContractID *int64          `json:"contractId"`
	Value      float64         `json:"value"`
	IssueDate  string          `json:"issueDate" binding:"required"`
	Items      []nfItemRequest `json:"items"`
}

func (s *Server) createNotaFiscalHandler(c *gin.Context) {
	var req createNotaFiscalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	issueDate := util.ParseDate(req.IssueDate)
	if !issueDate.Valid {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("data de emissão inválida: %s", req.IssueDate)))
		return
	}

	params := nf.CreateParams{
		Number:     req.Number,
		Series:     req.Series,
		Supplier:   req.Supplier,
		ContractID: req.ContractID,
		Value:      req.Value,
		IssueDate:  issueDate.Time,
	}
	for _, item := range req.Items {
		params.Items = append(params.Items, nf.ItemParams{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitValue:   item.UnitValue,
			TotalValue:  item.TotalValue,
			Ncm:         item.Ncm,
			Unit:        item.Unit,
			Weight:      item.Weight,
		})
	}

	notaFiscal, err := s.nfService.Create(c.Request.Context(), params)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notaFiscal)
}

func (s *Server) listNotasFiscaisHandler(c *gin.Context) {
	var queryParams struct {
		Status     string `form:"status"`
		Supplier   string `form:"supplier"`
		ContractID *int64 `form:"contract_id"`
		Page       int    `form:"page,default=1"`
		Limit      int    `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&queryParams); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	filters := nf.ListFilters{
		Status:     util.NilIfEmpty(queryParams.Status),
		Supplier:   util.NilIfEmpty(queryParams.Supplier),
		ContractID: queryParams.ContractID,
		Page:       queryParams.Page,
		Limit:      queryParams.Limit,
	}.Normalized()

	notas, total, err := s.nfService.List(c.Request.Context(), filters)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  notas,
		"total": total,
		"page":  filters.Page,
		"limit": filters.Limit,
	})
}

func (s *Server) getNotaFiscalHandler(c *gin.Context) {
	id, ok := s.nfIDParam(c)
	if !ok {
		return
	}

	notaFiscal, err := s.nfService.Get(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notaFiscal)
}

type updateNotaFiscalRequest struct {
	Number     *string  `json:"number"`
	Series     *string  `json:"series"`
	Supplier   *string  `json:"supplier"`
	ContractID *int64   `json:"contractId"`
	Value      *float64 `json:"value"`
	IssueDate  *string  `json:"issueDate"`
}

func (s *Server) updateNotaFiscalHandler(c *gin.Context) {
	id, ok := s.nfIDParam(c)
	if !ok {
		return
	}

	var req updateNotaFiscalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	params := nf.UpdateParams{
		Number:     req.Number,
		Series:     req.Series,
		Supplier:   req.Supplier,
		ContractID: req.ContractID,
		Value:      req.Value,
	}
	if req.IssueDate != nil {
		issueDate := util.ParseDate(*req.IssueDate)
		if !issueDate.Valid {
			c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("data de emissão inválida: %s", *req.IssueDate)))
			return
		}
		params.IssueDate = &issueDate.Time
	}

	notaFiscal, err := s.nfService.Update(c.Request.Context(), id, params)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notaFiscal)
}

func (s *Server) deleteNotaFiscalHandler(c *gin.Context) {
	id, ok := s.nfIDParam(c)
	if !ok {
		return
	}

	if err := s.nfService.Delete(c.Request.Context(), id); err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "nota fiscal removida com sucesso"})
}

func (s *Server) validateNotaFiscalHandler(c *gin.Context) {
	id, ok := s.nfIDParam(c)
	if !ok {
		return
	}

	notaFiscal, err := s.nfService.Validate(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notaFiscal)
}

type rejectNotaFiscalRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (s *Server) rejectNotaFiscalHandler(c *gin.Context) {
	id, ok := s.nfIDParam(c)
	if !ok {
		return
	}

	var req rejectNotaFiscalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("motivo da rejeição é obrigatório")))
		return
	}

	notaFiscal, err := s.nfService.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notaFiscal)
}

func (s *Server) processNotaFiscalHandler(c *gin.Context) {
	id, ok := s.nfIDParam(c)
	if !ok {
		return
	}

	notaFiscal, err := s.nfService.Process(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notaFiscal)
}

// nfStatsHandler handles GET /api/v1/nf/stats.
func (s *Server) nfStatsHandler(c *gin.Context) {
	stats, err := s.nfService.Stats(c.Request.Context())
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Server) nfIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de nota fiscal inválido")))
		return 0, false
	}
	return id, true
}
