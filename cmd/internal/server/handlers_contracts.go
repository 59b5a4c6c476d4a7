package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	"github.com/dalmoeng/custos-go/cmd/internal/services/contracts"
	"github.com/dalmoeng/custos-go/cmd/internal/util"
)

type createContractRequest struct {
	Name                  string                  `json:"name" binding:"required"`
	Client                string                  `json:"client" binding:"required"`
	Value                 float64                 `json:"value"`
	Status                string                  `json:"status"`
	StartDate             string                  `json:"startDate" binding:"required"`
	EndDate               string                  `json:"endDate"`
	ContractType          *string                 `json:"contractType"`
	MetaReducaoPercentual float64                 `json:"metaReducaoPercentual"`
	Items                 []api_models.BudgetItem `json:"items"`
}

func (s *Server) createContractHandler(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	startDate := util.ParseDate(req.StartDate)
	if !startDate.Valid {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("data de início inválida: %s", req.StartDate)))
		return
	}

	params := contracts.CreateParams{
		Name:                  req.Name,
		Client:                req.Client,
		Value:                 req.Value,
		Status:                req.Status,
		StartDate:             startDate.Time,
		ContractType:          req.ContractType,
		MetaReducaoPercentual: req.MetaReducaoPercentual,
		Items:                 req.Items,
	}
	if endDate := util.ParseDate(req.EndDate); endDate.Valid {
		params.EndDate = &endDate.Time
	}

	contract, err := s.contractService.Create(c.Request.Context(), params)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newContractResponse(*contract))
}

func (s *Server) listContractsHandler(c *gin.Context) {
	var queryParams struct {
		Client string `form:"client"`
		Status string `form:"status"`
		Page   int    `form:"page,default=1"`
		Limit  int    `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&queryParams); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	filters := contracts.ListFilters{
		Client: util.NilIfEmpty(queryParams.Client),
		Status: util.NilIfEmpty(queryParams.Status),
		Page:   queryParams.Page,
		Limit:  queryParams.Limit,
	}.Normalized()

	dbContracts, total, err := s.contractService.List(c.Request.Context(), filters)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  newContractResponses(dbContracts),
		"total": total,
		"page":  filters.Page,
		"limit": filters.Limit,
	})
}

func (s *Server) listContractNotasFiscaisHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	if _, err := s.contractService.Get(c.Request.Context(), id); err != nil {
		s.respondServiceError(c, err)
		return
	}

	notas, err := s.nfService.ListByContract(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  notas,
		"total": len(notas),
	})
}

func (s *Server) getContractHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	contract, err := s.contractService.Get(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newContractResponse(*contract))
}

type updateContractRequest struct {
	Name                  *string  `json:"name"`
	Client                *string  `json:"client"`
	Value                 *float64 `json:"value"`
	Spent                 *float64 `json:"spent"`
	Progress              *float64 `json:"progress"`
	Status                *string  `json:"status"`
	EndDate               *string  `json:"endDate"`
	ContractType          *string  `json:"contractType"`
	MetaReducaoPercentual *float64 `json:"metaReducaoPercentual"`
}

func (s *Server) updateContractHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	var req updateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	params := contracts.UpdateParams{
		Name:                  req.Name,
		Client:                req.Client,
		Value:                 req.Value,
		Spent:                 req.Spent,
		Progress:              req.Progress,
		Status:                req.Status,
		ContractType:          req.ContractType,
		MetaReducaoPercentual: req.MetaReducaoPercentual,
	}
	if req.EndDate != nil {
		endDate := util.ParseDate(*req.EndDate)
		if !endDate.Valid {
			c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("data de término inválida: %s", *req.EndDate)))
			return
		}
		params.EndDate = &endDate.Time
	}

	contract, err := s.contractService.Update(c.Request.Context(), id, params)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newContractResponse(*contract))
}

func (s *Server) deleteContractHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	if err := s.contractService.Delete(c.Request.Context(), id); err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "contrato removido com sucesso"})
}

type updateProgressRequest struct {
	Progress *float64 `json:"progress" binding:"required"`
}

func (s *Server) updateContractProgressHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	contract, err := s.contractService.UpdateProgress(c.Request.Context(), id, *req.Progress)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newContractResponse(*contract))
}

// contractKPIsHandler handles GET /api/v1/contracts/kpis.
func (s *Server) contractKPIsHandler(c *gin.Context) {
	kpis, err := s.dashboardService.GetKPIs(c.Request.Context())
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, kpis)
}
