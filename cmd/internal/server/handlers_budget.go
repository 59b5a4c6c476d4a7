package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	"github.com/dalmoeng/custos-go/cmd/internal/services/orcamento"
)

// parseBudgetHandler handles POST /api/v1/budget/parse.
// Parses an uploaded spreadsheet without persisting anything, so the
// frontend can preview items and validation findings before creating or
// updating a contract.
func (s *Server) parseBudgetHandler(c *gin.Context) {
	result, ok := s.parseUploadedBudget(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, result)
}

// importContractBudgetHandler handles POST /api/v1/contracts/:id/budget/import.
// Parses the uploaded spreadsheet and, when it is clean, replaces the
// contract's budget composition with it.
func (s *Server) importContractBudgetHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	result, ok := s.parseUploadedBudget(c)
	if !ok {
		return
	}

	contract, err := s.contractService.ImportBudget(c.Request.Context(), id, result)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contract": newContractResponse(*contract),
		"import":   result,
	})
}

func (s *Server) getContractBudgetHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de ID de contrato inválido")))
		return
	}

	items, err := s.contractService.GetBudget(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"total": len(items),
	})
}

// parseUploadedBudget pulls the "file" form field and runs the spreadsheet
// parser on it. On failure it writes the error response itself and returns
// ok=false.
func (s *Server) parseUploadedBudget(c *gin.Context) (*api_models.BudgetImportResult, bool) {
	sourceFile, sourceHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("arquivo 'file' não fornecido")))
		return nil, false
	}
	defer sourceFile.Close()

	contentType := sourceHeader.Header.Get("Content-Type")
	result, err := s.budgetService.ParseSpreadsheet(sourceHeader.Filename, contentType, sourceFile)
	if err != nil {
		if errors.Is(err, orcamento.ErrInvalidFileType) {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return nil, false
		}
		if errors.Is(err, orcamento.ErrFileRead) {
			c.JSON(http.StatusUnprocessableEntity, errorResponse(err))
			return nil, false
		}
		s.respondServiceError(c, err)
		return nil, false
	}

	return result, true
}
